// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/susp"
)

func TestPromiseResolveOnce(t *testing.T) {
	skipRace(t)
	p := susp.NewPromise[int]()
	if p.Settled() {
		t.Fatal("fresh promise reports settled")
	}
	if !p.Resolve(1) {
		t.Fatal("first Resolve did not settle")
	}
	if p.Resolve(2) {
		t.Fatal("second Resolve re-fired")
	}
	if p.Reject(errors.New("late")) {
		t.Fatal("Reject after Resolve re-fired")
	}
	if !p.Fulfilled() {
		t.Fatal("resolved promise not fulfilled")
	}

	sc := susp.New()
	v, err := susp.Exec(sc, susp.Resolve(susp.Eventually(p), "k"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 1 {
		t.Fatalf("got %d, want the first settlement 1", v)
	}
}

func TestPromiseRejectOnce(t *testing.T) {
	skipRace(t)
	boom := errors.New("boom")
	p := susp.NewPromise[int]()
	if !p.Reject(boom) {
		t.Fatal("first Reject did not settle")
	}
	if p.Resolve(9) {
		t.Fatal("Resolve after Reject re-fired")
	}
	if !p.Settled() || p.Fulfilled() {
		t.Fatal("rejected promise state wrong")
	}

	sc := susp.New()
	_, err := susp.Exec(sc, susp.Resolve(susp.Eventually(p), "k"))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want the rejection %v", err, boom)
	}
}

func TestPromisePreSettledConstructors(t *testing.T) {
	skipRace(t)
	sc := susp.New()

	v, err := susp.Exec(sc, susp.Resolve(susp.Eventually(susp.Resolved("hi")), "a"))
	if err != nil || v != "hi" {
		t.Fatalf("Resolved: got (%q, %v), want (%q, nil)", v, err, "hi")
	}

	boom := errors.New("boom")
	_, err = susp.Exec(sc, susp.Resolve(susp.Eventually(susp.Rejected[string](boom)), "b"))
	if !errors.Is(err, boom) {
		t.Fatalf("Rejected: got %v, want %v", err, boom)
	}
}

func TestPromiseRepeatedResolution(t *testing.T) {
	skipRace(t)
	// A settled promise answers every later resolution attempt from its
	// settlement cache without re-suspending.
	p := susp.Resolved(7)
	sc := susp.New()
	for range 3 {
		v, err := susp.Exec(sc, susp.Resolve(susp.Eventually(p), "k"))
		if err != nil || v != 7 {
			t.Fatalf("got (%d, %v), want (7, nil)", v, err)
		}
	}
}

func TestPromiseCrossGoroutineSettle(t *testing.T) {
	skipRace(t)
	p := susp.NewPromise[int]()
	go p.Resolve(42)

	sc := susp.New()
	v, err := susp.Exec(sc, susp.Resolve(susp.Eventually(p), "k"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}
