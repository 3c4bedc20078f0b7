// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/susp"
)

func TestReifyContToExpr(t *testing.T) {
	skipRace(t)
	// Cont protocol → Reify → Step+Advance loop
	cont := susp.ResolveMap(susp.Eventually(susp.Resolved(6)), "k", func(n int) int {
		return n * 7
	})
	sc := susp.New()
	v, err := execExpr(sc, susp.Reify(cont))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestReflectExprToCont(t *testing.T) {
	skipRace(t)
	// Expr protocol → Reflect → Exec
	expr := susp.ExprResolveMap(susp.Eventually(susp.Resolved("hi")), "k", func(s string) string {
		return s + "!"
	})
	sc := susp.New()
	v, err := susp.Exec(sc, susp.Reflect(expr))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != "hi!" {
		t.Fatalf("got %q, want %q", v, "hi!")
	}
}

func TestRoundTripReifyReflect(t *testing.T) {
	skipRace(t)
	// Reflect(Reify(cont)) preserves semantics
	cont := susp.ResolveBind(susp.Eventually(susp.Resolved(3)), "a",
		func(n int) kont.Eff[int] {
			return susp.Resolve(susp.Ready(n*2), "b")
		})
	roundTripped := susp.Reflect(susp.Reify(cont))

	sc := susp.New()
	v, err := susp.Exec(sc, roundTripped)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
}
