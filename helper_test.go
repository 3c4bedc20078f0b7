// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/susp"
)

// execExpr drives a resolution protocol to completion on sc via a
// Step+Advance loop. Retries on iox.ErrWouldBlock (producer not settled
// yet); a rejection ends the protocol with its error.
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](sc *susp.Scheduler, protocol kont.Expr[R]) (R, error) {
	result, sp := susp.Step[R](protocol)
	for sp != nil {
		var err error
		result, sp, err = susp.Advance(sc, sp)
		if err != nil && sp == nil {
			var zero R
			return zero, err
		}
	}
	return result, nil
}
