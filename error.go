// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// streamErrorHandler handles both stream and error effects.
// Stream ops wait on ErrWouldBlock via iox.Backoff; a rejection
// short-circuits as Left, exactly like kont's Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type streamErrorHandler[R any] struct {
	ctx    *renderContext
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler for the composed Stream+Error handler.
// Dispatch order: Stream → Error.
func (h streamErrorHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(streamDispatcher); ok {
		v, err := dispatchWait(h.ctx, sop)
		if err != nil {
			return kont.Left[error, R](err), false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("susp: unhandled effect in streamErrorHandler")
}

// ExecEither runs a Cont-world resolution protocol on sc.
// Returns Either[error, R] — Right on success, Left on a rejected source
// or kont.ThrowError. Blocks on iox.ErrWouldBlock via adaptive backoff,
// without spawning goroutines or creating channels.
func ExecEither[R any](sc *Scheduler, protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := streamErrorHandler[R]{ctx: &sc.ctx, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecEitherExpr runs an Expr-world resolution protocol on sc.
// Returns Either[error, R] — Right on success, Left on a rejected source
// or kont.ThrowError. Blocks on iox.ErrWouldBlock via adaptive backoff,
// without spawning goroutines or creating channels.
func ExecEitherExpr[R any](sc *Scheduler, protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := streamErrorHandler[R]{ctx: &sc.ctx, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// StepEither evaluates a resolution protocol with error support until the
// first effect suspension. Returns (Either[error, R], nil) on completion
// or error, or (zero, suspension) if pending.
func StepEither[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceEither dispatches the suspended operation on the scheduler.
// Stream ops are non-blocking: iox.ErrWouldBlock leaves the suspension
// retryable; a rejected source consumes the suspension and returns Left.
// Error ops are eager: Throw discards the suspension and returns Left.
func AdvanceEither[R any](sc *Scheduler, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	// Stream ops: non-blocking dispatch
	if sop, ok := susp.Op().(streamDispatcher); ok {
		v, err := sop.DispatchStream(&sc.ctx)
		if err != nil {
			if errors.Is(err, iox.ErrWouldBlock) {
				var zero kont.Either[error, R]
				return zero, susp, err
			}
			susp.Discard()
			return kont.Left[error, R](err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[error, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("susp: unhandled effect in AdvanceEither")
}
