// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a heap
// escape when boxing the empty struct into kont.Frame.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprResolve demands the value of s under key (Expr-world).
func ExprResolve[T any](s Streamable[T], key string) kont.Expr[T] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Demand[T]{Source: s, Key: key}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[T](ef)
}

func resolveBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprResolveBind resolves s under key and passes the value to f.
// Fuses ExprPerform(Demand[T]{...}) + ExprBind.
func ExprResolveBind[T, B any](s Streamable[T], key string, f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = resolveBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Demand[T]{Source: s, Key: key}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func resolveMapUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) B)
	return kont.Erased(f(current.(T))), exprReturnFrame
}

// ExprResolveMap resolves s under key and applies f to the value.
// Fuses ExprPerform(Demand[T]{...}) + ExprMap.
func ExprResolveMap[T, B any](s Streamable[T], key string, f func(T) B) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = resolveMapUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Demand[T]{Source: s, Key: key}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
