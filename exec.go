// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// dispatchWait blocks until DispatchStream succeeds or fails fatally,
// backing off on iox.ErrWouldBlock with iox.Backoff (settlement waiting).
// A rejection error passes through unmodified.
func dispatchWait(ctx *renderContext, sop streamDispatcher) (kont.Resumed, error) {
	var bo iox.Backoff
	for {
		v, err := sop.DispatchStream(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return nil, err
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world resolution protocol to completion on sc.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
// A rejected source short-circuits the protocol and returns its error.
func Exec[R any](sc *Scheduler, protocol kont.Eff[R]) (R, error) {
	return unwrapEither(ExecEither(sc, protocol))
}

// ExecExpr runs an Expr-world resolution protocol to completion on sc.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
// A rejected source short-circuits the protocol and returns its error.
func ExecExpr[R any](sc *Scheduler, protocol kont.Expr[R]) (R, error) {
	return unwrapEither(ExecEitherExpr(sc, protocol))
}

func unwrapEither[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	v, _ := e.GetRight()
	return v, nil
}
