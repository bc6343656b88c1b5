// Package profile records named wall-clock marks through a pipeline run and
// reports the time spent between consecutive marks.
package profile

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Span is the time between a mark and the one before it.
type Span struct {
	Name     string
	Duration time.Duration
}

type mark struct {
	name string
	at   time.Time
}

// Profiler collects marks. The zero value is ready to use; it is not safe
// for concurrent use.
type Profiler struct {
	marks []mark
	now   func() time.Time
}

// New returns a Profiler reading the wall clock.
func New() *Profiler {
	return &Profiler{now: time.Now}
}

func (p *Profiler) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}

// Start discards earlier marks and records the unnamed start mark.
func (p *Profiler) Start() {
	p.marks = p.marks[:0]
	p.Mark("")
}

// Mark records name at the current time.
func (p *Profiler) Mark(name string) {
	p.marks = append(p.marks, mark{name: name, at: p.clock()})
}

// Spans returns one entry per mark after the first.
func (p *Profiler) Spans() []Span {
	if len(p.marks) < 2 {
		return nil
	}

	out := make([]Span, len(p.marks)-1)
	for i, m := range p.marks[1:] {
		out[i] = Span{Name: m.name, Duration: m.at.Sub(p.marks[i].at)}
	}
	return out
}

// Total returns the time between the first and the last mark.
func (p *Profiler) Total() time.Duration {
	if len(p.marks) < 2 {
		return 0
	}
	return p.marks[len(p.marks)-1].at.Sub(p.marks[0].at)
}

// String lists every span on its own line followed by the total.
func (p *Profiler) String() string {
	var b strings.Builder
	for _, s := range p.Spans() {
		fmt.Fprintf(&b, "%s: %s\n", s.Name, s.Duration)
	}
	fmt.Fprintf(&b, "total: %s", p.Total())
	return b.String()
}

// LogValue groups the spans and the total for structured logging.
func (p *Profiler) LogValue() slog.Value {
	spans := p.Spans()
	attrs := make([]slog.Attr, 0, len(spans)+1)
	for _, s := range spans {
		attrs = append(attrs, slog.Duration(s.Name, s.Duration))
	}
	attrs = append(attrs, slog.Duration("total", p.Total()))
	return slog.GroupValue(attrs...)
}
