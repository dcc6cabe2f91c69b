package dom

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// DiagnosticKind categorises a recovered build failure.
type DiagnosticKind int

const (
	DiagUnknown DiagnosticKind = iota
	DiagUnknownKind
	DiagMalformedAttributes
	DiagStyleParse
	DiagMissingListener
	DiagRegistration
	DiagConstruction
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnknownKind:
		return "unknown-kind"
	case DiagMalformedAttributes:
		return "malformed-attributes"
	case DiagStyleParse:
		return "style-parse"
	case DiagMissingListener:
		return "missing-listener"
	case DiagRegistration:
		return "registration"
	case DiagConstruction:
		return "construction"
	default:
		return "unknown"
	}
}

// Diagnostic describes a recovered failure with enough context to find the
// offending markup node.
type Diagnostic struct {
	Kind      DiagnosticKind
	Widget    string
	Name      string
	Args      []any
	Kwargs    map[string]any
	Err       error
	Timestamp time.Time
}

func (d Diagnostic) String() string {
	target := d.Widget
	if d.Name != "" {
		target = fmt.Sprintf("%s %q", d.Widget, d.Name)
	}
	if d.Kind == DiagConstruction {
		return fmt.Sprintf("[%s] %s: args=%v kwargs=%v: %v", d.Kind, target, d.Args, d.Kwargs, d.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", d.Kind, target, d.Err)
}

// Reporter receives recovered build failures.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report calls f.
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// LogReporter writes diagnostics through a standard logger. A nil Logger uses
// log.Default().
type LogReporter struct {
	Logger *log.Logger
}

// Report logs d with a [dom] prefix.
func (r *LogReporter) Report(d Diagnostic) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("[dom] ERROR %s", d)
}

// CollectReporter keeps diagnostics in memory.
type CollectReporter struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report appends d.
func (r *CollectReporter) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (r *CollectReporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Diagnostic(nil), r.items...)
}

// Kinds returns the collected diagnostic kinds in order.
func (r *CollectReporter) Kinds() []DiagnosticKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DiagnosticKind, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item.Kind)
	}
	return out
}

// Tee forwards every diagnostic to each reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}
