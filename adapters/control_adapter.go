// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

var _ api.Control = (*ControlAdapter)(nil)

type ControlAdapter struct {
	config  *control.Config
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter(cfg *control.Config) *ControlAdapter {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	adapter := &ControlAdapter{
		config:  cfg,
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.Snapshot()
}

// Stats merges metrics with debug probe output under the "debug." prefix.
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Tracer returns the tracer that feeds buffer events into Stats.
func (c *ControlAdapter) Tracer() api.Tracer {
	return c.metrics
}

// WatchRing exposes b's live state in Stats under "debug.ring.<name>".
func (c *ControlAdapter) WatchRing(name string, b control.RingState) {
	c.debug.RegisterRing(name, b)
}
