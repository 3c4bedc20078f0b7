// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/kont"
)

// renderContext holds the per-scheduler state that stream operations
// dispatch against.
type renderContext struct {
	cache *Cache
}

// streamDispatcher is the structural interface for stream operations.
// DispatchStream is non-blocking: it returns iox.ErrWouldBlock while the
// demanded source is unsettled, and the rejection error if it rejected.
type streamDispatcher interface {
	DispatchStream(ctx *renderContext) (kont.Resumed, error)
}

// Scheduler is the session-scoped driver for resolution. It owns the
// identity cache consulted by every resolution it evaluates and the list
// of mounted boundaries parked on unsettled sources.
//
// A Scheduler is a cooperative single-threaded construct: all evaluation
// entry points (Exec, Advance, Tick, Wait, MountBoundary) must be called
// from one goroutine. Producers settle promises from wherever they run.
type Scheduler struct {
	ctx    renderContext
	serial Serial
	mounts []mounted
}

// Option configures a [Scheduler].
type Option func(*Scheduler)

// WithCache injects a shared identity cache, tying the cache lifetime to
// the caller's session instead of the scheduler. Schedulers sharing a
// cache must not tick concurrently.
func WithCache(c *Cache) Option {
	return func(sc *Scheduler) { sc.ctx.cache = c }
}

// New creates a scheduler. Without [WithCache] it owns a private unbounded
// [Cache], torn down with the scheduler itself.
func New(opts ...Option) *Scheduler {
	sc := &Scheduler{serial: nextSerial()}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.ctx.cache == nil {
		sc.ctx.cache = NewCache()
	}
	return sc
}

// Cache returns the scheduler's identity cache.
func (sc *Scheduler) Cache() *Cache {
	return sc.ctx.cache
}

// Serial returns the serial number assigned to this scheduler.
func (sc *Scheduler) Serial() Serial {
	return sc.serial
}

// Pending returns the number of mounted boundaries still parked on
// unsettled sources.
func (sc *Scheduler) Pending() int {
	return len(sc.mounts)
}
