// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Step evaluates a resolution protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended stream operation on the scheduler.
// DispatchStream is non-blocking: it returns iox.ErrWouldBlock while the
// demanded source is unsettled (the settlement boundary).
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after the producer settles.
// On any other error the source rejected: the suspension is discarded and
// the rejection is returned for the caller's error boundary.
func Advance[R any](sc *Scheduler, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	sop, ok := susp.Op().(streamDispatcher)
	if !ok {
		panic("susp: unhandled effect in Advance")
	}
	v, err := sop.DispatchStream(&sc.ctx)
	if err != nil {
		var zero R
		if errors.Is(err, iox.ErrWouldBlock) {
			return zero, susp, err
		}
		susp.Discard()
		return zero, nil, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
