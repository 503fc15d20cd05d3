// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, logging, metrics and debug introspection for programs built
// on hioload-ring buffers.
//
// Provides:
//   - YAML configuration with defaults and validation
//   - zap logger construction and a logging api.Tracer
//   - Per-operation counters fed by buffer lifecycle events
//   - Named debug probes, including live buffer state export
//
// Buffers themselves never log; everything here is attached through
// ring.WithTracer or by registering probes.
package control
