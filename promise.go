// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// Promise states. Transitions are monotonic:
// pending → settling → fulfilled|rejected. Never reversed, never re-fired.
// The settling state is the producer's claim window between winning the
// CAS and publishing the settlement; consumers treat it as pending.
const (
	promisePending uint32 = iota
	promiseSettling
	promiseFulfilled
	promiseRejected
)

// settleCapacity is the bounded capacity of the settlement queue.
// A promise settles at most once, so a single slot suffices; lfq
// requires a capacity of at least 2.
const settleCapacity = 2

// settlement carries a promise outcome through the SPSC queue.
type settlement[T any] struct {
	value T
	err   error
}

// Promise is a one-shot pending computation that eventually fulfills with
// a value of T or rejects with an error.
//
// The settling producer publishes through a bounded lock-free SPSC queue
// (lfq), with the state flag on atomix carrying the settled/unsettled
// boundary. The producer side may be any single goroutine; the consumer
// side is the scheduler that resolves the promise. A Promise must not be
// consumed by more than one [Scheduler].
type Promise[T any] struct {
	state   atomix.Uint32
	settleQ lfq.SPSC[settlement[T]]

	// Consumer-side settlement cache, owned by the draining scheduler.
	// Written once, after the state flag reads settled.
	drained bool
	value   T
	err     error
}

// NewPromise creates an unsettled promise.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{}
	p.settleQ.Init(settleCapacity)
	return p
}

// Resolved creates a promise already fulfilled with v.
// Used when a mixed API forces an available value into promise form.
func Resolved[T any](v T) *Promise[T] {
	p := NewPromise[T]()
	p.Resolve(v)
	return p
}

// Rejected creates a promise already rejected with err.
func Rejected[T any](err error) *Promise[T] {
	p := NewPromise[T]()
	p.Reject(err)
	return p
}

// Resolve fulfills the promise with v. Reports whether this call settled
// the promise; a promise settles exactly once and the losing call is
// a no-op.
func (p *Promise[T]) Resolve(v T) bool {
	if !p.state.CompareAndSwap(promisePending, promiseSettling) {
		return false
	}
	s := settlement[T]{value: v}
	// The settling CAS guarantees a single producer and an empty queue.
	if p.settleQ.Enqueue(&s) != nil {
		panic("susp: settlement queue full")
	}
	p.state.Store(promiseFulfilled)
	return true
}

// Reject rejects the promise with err. Reports whether this call settled
// the promise; a promise settles exactly once and the losing call is
// a no-op.
func (p *Promise[T]) Reject(err error) bool {
	if !p.state.CompareAndSwap(promisePending, promiseSettling) {
		return false
	}
	s := settlement[T]{err: err}
	if p.settleQ.Enqueue(&s) != nil {
		panic("susp: settlement queue full")
	}
	p.state.Store(promiseRejected)
	return true
}

// Settled reports whether the promise has fulfilled or rejected.
func (p *Promise[T]) Settled() bool {
	return p.state.Load() >= promiseFulfilled
}

// Fulfilled reports whether the promise has fulfilled.
func (p *Promise[T]) Fulfilled() bool {
	return p.state.Load() == promiseFulfilled
}

// poll is the consumer-side, non-blocking settlement read.
// The first settled poll drains the SPSC queue into the local cache;
// later polls read the cache. Only the consuming scheduler may call poll.
func (p *Promise[T]) poll() (T, error, bool) {
	if p.drained {
		return p.value, p.err, true
	}
	if p.state.Load() < promiseFulfilled {
		var zero T
		return zero, nil, false
	}
	s, err := p.settleQ.Dequeue()
	if err != nil {
		var zero T
		return zero, nil, false
	}
	p.value, p.err = s.value, s.err
	p.drained = true
	return p.value, p.err, true
}
