// Package api
// Author: momentics <momentics@gmail.com>
//
// Lifecycle tracing contract for ring buffers. Tracers are optional and
// replace build-time debug printing with a pluggable hook.

package api

// Op identifies a traced buffer operation.
type Op int

const (
	OpCreate Op = iota
	OpClone
	OpAssign
	OpInsert
	OpOverwrite
	OpRemove
	OpSwap
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpClone:
		return "clone"
	case OpAssign:
		return "assign"
	case OpInsert:
		return "insert"
	case OpOverwrite:
		return "overwrite"
	case OpRemove:
		return "remove"
	case OpSwap:
		return "swap"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event is the buffer state observed right after an operation completed.
type Event struct {
	Op       Op
	Capacity int
	Size     int
	Head     int
}

// Tracer receives buffer lifecycle events.
type Tracer interface {
	Trace(ev Event)
}

// NopTracer discards every event.
type NopTracer struct{}

// Trace implements Tracer.
func (NopTracer) Trace(Event) {}

// MultiTracer fans an event out to several tracers in order.
type MultiTracer []Tracer

// Trace implements Tracer.
func (m MultiTracer) Trace(ev Event) {
	for _, t := range m {
		t.Trace(ev)
	}
}
