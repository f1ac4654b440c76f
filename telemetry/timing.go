package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/readshow/output"
)

// TimingCollector builds a tree of timed operations. It is safe for use by
// several goroutines, as the watch command does when files change quickly.
type TimingCollector struct {
	mu      sync.Mutex
	roots   []*span
	current *span
	now     func() time.Time
}

type span struct {
	name     string
	start    time.Time
	end      time.Time
	bytes    int
	parent   *span
	children []*span
}

func (s *span) duration() time.Duration {
	if s.end.IsZero() {
		return 0
	}
	return s.end.Sub(s.start)
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{now: time.Now}
}

// Start begins a timer under the innermost running one, or a new root.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &span{name: name, start: c.now(), parent: c.current}
	if c.current == nil {
		c.roots = append(c.roots, s)
	} else {
		c.current.children = append(c.current.children, s)
	}
	c.current = s

	return &spanTimer{collector: c, span: s}
}

// Report writes every root and its children as a tree.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, root := range c.roots {
		writeTree(w, root, styles)
	}
}

type spanTimer struct {
	collector *TimingCollector
	span      *span
}

func (t *spanTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	if !t.span.end.IsZero() {
		return
	}
	t.span.end = t.collector.now()
	if t.collector.current == t.span {
		t.collector.current = t.span.parent
	}
}

func (t *spanTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	child := &span{name: name, start: t.collector.now(), parent: t.span}
	t.span.children = append(t.span.children, child)

	return &spanTimer{collector: t.collector, span: child}
}

func (t *spanTimer) Bytes(n int) {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.span.bytes = n
}
