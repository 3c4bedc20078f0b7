// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/kont"
)

// ResolveBind resolves s under key and passes the value to f.
// Fuses Perform(Demand[T]{...}) + Bind.
func ResolveBind[T, B any](s Streamable[T], key string, f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Demand[T]{Source: s, Key: key}), f)
}

// ResolveMap resolves s under key and applies f to the value.
// Fuses Perform(Demand[T]{...}) + Map.
func ResolveMap[T, B any](s Streamable[T], key string, f func(T) B) kont.Eff[B] {
	return kont.Map[kont.Resumed, T, B](kont.Perform(Demand[T]{Source: s, Key: key}), f)
}
