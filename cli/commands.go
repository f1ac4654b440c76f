package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
	Verbose   int  `help:"Increase log verbosity (repeatable)." short:"v" type:"counter"`
}

type Commands struct {
	Globals

	Decode DecodeCmd `cmd:"" help:"Decode a printed value and dump it."`
	Check  CheckCmd  `cmd:"" help:"Check that an input decodes as the given type."`
	Watch  WatchCmd  `cmd:"" help:"Re-check a file every time it changes."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging printed values."`
}
