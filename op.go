// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Demand is the effect operation resolving a Streamable under a stable key.
// Perform(Demand[T]{Source: s, Key: k}) yields the underlying value,
// suspending the computation until the source settles.
//
// The key identifies the logical data request, not the value object:
// synchronous inputs are reconstructed on every render and carry no stable
// identity of their own. Callers must change the key when the logical
// request changes and must not reuse a key across different requests.
type Demand[T any] struct {
	kont.Phantom[T]
	Source Streamable[T]
	Key    string
}

// DispatchStream handles Demand against the scheduler's identity cache.
// Non-blocking: returns iox.ErrWouldBlock while the demanded source is
// unsettled. A rejected source returns its rejection error unmodified;
// rejection is fatal, not a retry boundary.
func (d Demand[T]) DispatchStream(ctx *renderContext) (kont.Resumed, error) {
	if v, ok := d.Source.Value(); ok {
		// Fast path: nothing asynchronous to cross. No cache interaction,
		// no promise allocation.
		return v, nil
	}
	p, ok := d.Source.Promise()
	if !ok {
		panic("susp: Demand on a zero Streamable")
	}
	if d.Key != "" {
		// First registration wins. Every later resolution attempt reaching
		// this key observes the identical computation instance, so
		// settlement resumes exactly the suspensions waiting on it and
		// re-render churn triggers no duplicate work.
		p = GetOrCreate(ctx.cache, d.Key, func() *Promise[T] { return p })
	}
	v, err, settled := p.poll()
	if !settled {
		return nil, iox.ErrWouldBlock
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Resolve demands the value of s under key.
// An available source resolves synchronously; a pending source suspends
// the computation until settlement, fulfilling with the value or failing
// with the rejection error.
func Resolve[T any](s Streamable[T], key string) kont.Eff[T] {
	return kont.Perform(Demand[T]{Source: s, Key: key})
}
