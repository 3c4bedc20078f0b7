// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Boundary pairs a streamable source with a fallback view and a render
// function mapping the resolved value to a view. Mounting a boundary
// nests the resolution inside it, so the boundary — not the surrounding
// tree — absorbs the suspension and shows the fallback while siblings
// proceed independently.
type Boundary[T, V any] struct {
	Source   Streamable[T]
	Key      string
	Fallback V
	Render   func(T) V
}

// Eff returns the boundary's resolution protocol: demand the source under
// the key, then render the value.
func (b Boundary[T, V]) Eff() kont.Eff[V] {
	return ResolveMap(b.Source, b.Key, b.Render)
}

// Mount is a mounted boundary. While the source is unsettled, View returns
// the fallback; once it fulfills, View returns the rendered value exactly
// once swapped, with no intermediate states beyond the fallback. A
// rejection parks the error on Err for the enclosing error boundary.
type Mount[V any] struct {
	sc    *Scheduler
	view  V
	susp  *kont.Suspension[V]
	err   error
	ready bool
}

// MountBoundary mounts b on sc and advances it as far as the source
// allows. An available source reveals immediately: the mount never shows
// the fallback when no asynchronous boundary needs crossing.
func MountBoundary[T, V any](sc *Scheduler, b Boundary[T, V]) *Mount[V] {
	m := &Mount[V]{sc: sc}
	result, sp := kont.StepExpr(Reify(b.Eff()))
	if sp == nil {
		m.view, m.ready = result, true
		return m
	}
	m.view, m.susp = b.Fallback, sp
	for {
		progress, done := m.step()
		if done {
			return m
		}
		if !progress {
			break
		}
	}
	sc.mounts = append(sc.mounts, m)
	return m
}

// step implements mounted.
func (m *Mount[V]) step() (progress, done bool) {
	if m.susp == nil {
		return false, true
	}
	v, next, err := Advance(m.sc, m.susp)
	if err != nil {
		if errors.Is(err, iox.ErrWouldBlock) {
			return false, false
		}
		m.susp, m.err = nil, err
		return true, true
	}
	m.susp = next
	if next == nil {
		m.view, m.ready = v, true
		return true, true
	}
	return true, false
}

// View returns the boundary's current view: the fallback while unsettled
// or failed, the rendered value once ready.
func (m *Mount[V]) View() V {
	return m.view
}

// Ready reports whether the source fulfilled and the rendered view is in
// place.
func (m *Mount[V]) Ready() bool {
	return m.ready
}

// Err returns the rejection carried by the source, if it rejected.
// Propagated unmodified; the mount never retries.
func (m *Mount[V]) Err() error {
	return m.err
}

// Discard abandons a pending mount: the subtree was thrown away before the
// source settled. The one-shot suspension is dropped, so a stale
// settlement arriving later is ignored. Settled mounts are a no-op.
func (m *Mount[V]) Discard() {
	if m.susp == nil {
		return
	}
	m.susp.Discard()
	m.susp = nil
	for i, x := range m.sc.mounts {
		if x == m {
			m.sc.mounts = append(m.sc.mounts[:i], m.sc.mounts[i+1:]...)
			break
		}
	}
}
