// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package redraw turns the animation engine's per-frame redraw requests into
// rate-limited render passes.
//
// Every property write asks for a redraw. With a dozen animations ticking,
// that is hundreds of requests a second; the render loop only needs to know
// that something changed since the last frame. A Coalescer collapses all
// requests made between two flushes into one and caps flushes at a
// configured frame rate.
package redraw

import (
	"context"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// Coalescer merges redraw requests. Request is safe to call from any
// goroutine and never blocks; Run delivers flushes on its own goroutine.
type Coalescer struct {
	limiter *rate.Limiter
	flush   func()
	pending chan struct{}

	requests atomic.Uint64
	flushes  atomic.Uint64
}

// New creates a coalescer calling flush at most fps times a second. A
// non-positive fps disables the cap.
func New(fps int, flush func()) *Coalescer {
	return &Coalescer{
		limiter: rate.NewLimiter(limitFor(fps), 1),
		flush:   flush,
		pending: make(chan struct{}, 1),
	}
}

func limitFor(fps int) rate.Limit {
	if fps <= 0 {
		return rate.Inf
	}
	return rate.Limit(fps)
}

// Request marks the screen dirty. It matches the func() redraw hook the
// animation scheduler expects.
func (c *Coalescer) Request() {
	c.requests.Add(1)
	select {
	case c.pending <- struct{}{}:
	default:
	}
}

// SetFPS changes the cap, for example after a config reload.
func (c *Coalescer) SetFPS(fps int) {
	c.limiter.SetLimit(limitFor(fps))
}

// Run flushes pending requests until ctx is done.
func (c *Coalescer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.pending:
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		c.flushes.Add(1)
		if c.flush != nil {
			c.flush()
		}
	}
}

// Requests returns how many redraws were asked for.
func (c *Coalescer) Requests() uint64 { return c.requests.Load() }

// Flushes returns how many times flush ran.
func (c *Coalescer) Flushes() uint64 { return c.flushes.Load() }
