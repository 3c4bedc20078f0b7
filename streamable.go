// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

// Streamable is a value of type T that is available now or later.
// The discriminant lives on the wrapper: consumers never inspect T
// to tell the two cases apart.
//
// A Streamable is constructed by a producer via [Ready] or [Eventually]
// and consumed by resolution; it is never mutated.
type Streamable[T any] struct {
	value   T
	promise *Promise[T]
	ready   bool
}

// Ready wraps an immediately available value.
func Ready[T any](v T) Streamable[T] {
	return Streamable[T]{value: v, ready: true}
}

// Eventually wraps a pending computation that will settle to a value of T.
func Eventually[T any](p *Promise[T]) Streamable[T] {
	return Streamable[T]{promise: p}
}

// Available reports whether the value is immediately available.
func (s Streamable[T]) Available() bool {
	return s.ready
}

// Value returns the immediate value, if available.
func (s Streamable[T]) Value() (T, bool) {
	return s.value, s.ready
}

// Promise returns the pending computation, if this Streamable is
// the pending case.
func (s Streamable[T]) Promise() (*Promise[T], bool) {
	return s.promise, s.promise != nil
}
