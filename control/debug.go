// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug probes and buffer state reflection.

package control

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RingState is the observable surface of a buffer, satisfied by *ring.Buffer[T].
type RingState interface {
	Cap() int
	Len() int
	Head() int
	Tail() int
	String() string
}

// RegisterRing publishes the live state of b under "ring.<name>".
// The probe reads b when DumpState runs, so the caller must not mutate b concurrently.
func (dp *DebugProbes) RegisterRing(name string, b RingState) {
	dp.RegisterProbe("ring."+name, func() any {
		return map[string]any{
			"capacity": b.Cap(),
			"size":     b.Len(),
			"head":     b.Head(),
			"tail":     b.Tail(),
			"contents": b.String(),
		}
	})
}

// RegisterRuntimeProbes sets platform debug values.
func RegisterRuntimeProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.go", func() any {
		return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	})
}
