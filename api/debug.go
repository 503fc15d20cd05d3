// Package api
// Author: momentics
//
// Live debug and state inspection support for buffers in running programs.

package api

// Debug exposes runtime introspection.
type Debug interface {
	// DumpState emits a snapshot of every registered probe.
	DumpState() map[string]any

	// RegisterProbe registers a named probe, replacing any previous one.
	RegisterProbe(name string, fn func() any)
}
