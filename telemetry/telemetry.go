// Package telemetry records how long decoding phases take and how much input
// each one covered.
//
// Collectors travel in the context, so library entry points can be timed
// without extra parameters:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	v, err := readshow.Read(ctx, decode.Int, src)
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/readshow/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timers into a report.
type Collector interface {
	// Start begins timing an operation. Timers started while another one is
	// running are nested under it.
	Start(name string) Timer

	// Report writes the collected timings. styles may be nil.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation.
type Timer interface {
	// End stops the timer.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer

	// Bytes records how much input the operation covered.
	Bytes(n int)
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector of ctx, or one that discards everything.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
