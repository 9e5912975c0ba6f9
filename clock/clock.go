// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clock drives clocked devices.
//
// A Controller exclusively owns a device. All clock edges and all accesses to
// the device go through the controller, which serializes them. This makes it
// possible to run a free-running clock in one goroutine while another one
// inspects or reconfigures the device.
//
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/db47h/nandsim/logger"
	"github.com/pkg/errors"
)

// A Ticker is a clocked device.
//
type Ticker interface {
	// Tick drives the device's clock input to the given level.
	Tick(clk bool)
}

// DefaultPeriod is the default duration of a half clock cycle for Run.
//
const DefaultPeriod = 500 * time.Millisecond

// ErrPeriod is returned by New when the clock period is not positive.
//
var ErrPeriod = errors.New("clock period must be positive")

// An Option configures a Controller.
//
type Option func(*config)

type config struct {
	period time.Duration
	perm   logger.Permission
}

// WithPeriod sets the duration of a half clock cycle for Run.
//
func WithPeriod(d time.Duration) Option {
	return func(c *config) { c.period = d }
}

// WithLogging sets the permission used to log clock events under the "clock"
// tag. The default is logger.Deny.
//
func WithLogging(perm logger.Permission) Option {
	return func(c *config) { c.perm = perm }
}

// A Controller owns a clocked device of type T and drives its clock.
//
// The clock level starts low. All methods are safe for concurrent use.
//
type Controller[T Ticker] struct {
	mu    sync.Mutex
	dev   T
	clk   bool
	edges uint
	cfg   config
}

// New returns a new Controller for dev. The caller must not use dev directly
// afterwards, but through Do.
//
func New[T Ticker](dev T, opts ...Option) (*Controller[T], error) {
	cfg := config{period: DefaultPeriod, perm: logger.Deny}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.period <= 0 {
		return nil, errors.Wrapf(ErrPeriod, "period %v", cfg.period)
	}
	return &Controller[T]{dev: dev, cfg: cfg}, nil
}

// drive must be called with c.mu held.
func (c *Controller[T]) drive(clk bool) {
	if clk != c.clk {
		c.edges++
	}
	c.clk = clk
	c.dev.Tick(clk)
}

// Level returns the current clock level.
//
func (c *Controller[T]) Level() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clk
}

// Edges returns the number of clock level changes since the controller was
// created.
//
func (c *Controller[T]) Edges() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.edges
}

// Step toggles the clock level.
//
func (c *Controller[T]) Step() {
	c.mu.Lock()
	c.drive(!c.clk)
	c.mu.Unlock()
}

// Tick drives the clock low. The device is ticked even if the clock is
// already low, so that it picks up configuration changes made through Do.
//
func (c *Controller[T]) Tick() {
	c.mu.Lock()
	c.drive(false)
	c.mu.Unlock()
}

// Tock drives the clock high.
//
func (c *Controller[T]) Tock() {
	c.mu.Lock()
	c.drive(true)
	c.mu.Unlock()
}

// TickTock runs a whole clock cycle, ending on a raising edge. Once TickTock
// returns, the outputs of the device reflect its configuration at the time of
// the call.
//
func (c *Controller[T]) TickTock() {
	c.mu.Lock()
	c.drive(false)
	c.drive(true)
	c.mu.Unlock()
}

// Do calls f with exclusive access to the device.
//
func (c *Controller[T]) Do(f func(dev T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(c.dev)
}

// Run toggles the clock every period until ctx is done, then returns
// ctx.Err().
//
func (c *Controller[T]) Run(ctx context.Context) error {
	t := time.NewTicker(c.cfg.period)
	defer t.Stop()

	logger.Logf(c.cfg.perm, "clock", "started, period %v", c.cfg.period)
	for {
		select {
		case <-ctx.Done():
			logger.Logf(c.cfg.perm, "clock", "stopped after %d edges", c.Edges())
			return ctx.Err()
		case <-t.C:
			c.Step()
		}
	}
}
