package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/readshow/output"
)

const slowThreshold = 100 * time.Millisecond

// writeTree renders a span and its descendants:
//
//	read: 12ms (4.0 KiB)
//	└─ decode: 11ms (4.0 KiB, 364 KiB/s)
func writeTree(w io.Writer, root *span, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, describe(root, styles))

	for i, child := range root.children {
		writeNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func writeNode(w io.Writer, s *span, prefix string, last bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if last {
		branch, extension = "└─ ", "   "
	}

	tree := prefix + branch
	if styles != nil {
		tree = styles.Dim(tree)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", tree, s.name, describe(s, styles))

	for i, child := range s.children {
		writeNode(w, child, prefix+extension, i == len(s.children)-1, styles)
	}
}

func describe(s *span, styles *output.Styles) string {
	d := s.duration()
	text := formatDuration(d)
	if s.bytes > 0 {
		text += " (" + formatBytes(s.bytes)
		if d > 0 {
			text += ", " + formatBytes(int(float64(s.bytes)*float64(time.Second)/float64(d))) + "/s"
		}
		text += ")"
	}

	if styles != nil {
		return styles.Timing(text, d >= slowThreshold)
	}
	return text
}

// formatDuration shows milliseconds below one second and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value, suffix := float64(n)/unit, "KiB"
	for _, next := range []string{"MiB", "GiB"} {
		if value < unit {
			break
		}
		value, suffix = value/unit, next
	}
	return fmt.Sprintf("%.1f %s", value, suffix)
}
