// File: control/controller.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Controller composes the config store, metrics registry and debug probes
// behind the api.Control surface.

package control

import (
	"github.com/momentics/hioload-sync/api"
)

type Controller struct {
	config  *ConfigStore
	metrics *MetricsRegistry
	debug   *DebugProbes
}

var _ api.Control = (*Controller)(nil)

// NewController wires the three stores together and registers the
// platform probes.
func NewController() *Controller {
	c := &Controller{
		config:  NewConfigStore(),
		metrics: NewMetricsRegistry(),
		debug:   NewDebugProbes(),
	}
	RegisterPlatformProbes(c.debug)
	return c
}

func (c *Controller) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *Controller) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metric values with probe output; probe keys carry a
// "debug." prefix so they never collide with published metrics.
func (c *Controller) Stats() map[string]any {
	combined := c.metrics.GetSnapshot()
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

func (c *Controller) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// IncMetric adds delta to an int64 metric.
func (c *Controller) IncMetric(key string, delta int64) {
	c.metrics.Inc(key, delta)
}

func (c *Controller) OnReload(fn func()) {
	c.config.OnReload(fn)
	RegisterReloadHook(fn)
}

func (c *Controller) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
