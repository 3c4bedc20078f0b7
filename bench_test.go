// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp_test

import (
	"testing"

	"code.hybscloud.com/susp"
)

// BenchmarkResolveReady measures the synchronous fast path.
func BenchmarkResolveReady(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	sc := susp.New()
	for b.Loop() {
		susp.Exec(sc, susp.Resolve(susp.Ready(42), "k"))
	}
}

// BenchmarkResolveSettled measures resolution of an already-settled promise.
func BenchmarkResolveSettled(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	sc := susp.New()
	p := susp.Resolved(42)
	for b.Loop() {
		susp.Exec(sc, susp.Resolve(susp.Eventually(p), "k"))
	}
}

// BenchmarkGetOrCreateHit measures a cache hit on the unbounded store.
func BenchmarkGetOrCreateHit(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	c := susp.NewCache()
	factory := func() *susp.Promise[int] { return susp.Resolved(1) }
	susp.GetOrCreate(c, "k", factory)
	for b.Loop() {
		susp.GetOrCreate(c, "k", factory)
	}
}

// BenchmarkGetOrCreateHitBounded measures a cache hit on the LRU store.
func BenchmarkGetOrCreateHitBounded(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	c := susp.NewCache(susp.WithCapacity(64))
	factory := func() *susp.Promise[int] { return susp.Resolved(1) }
	susp.GetOrCreate(c, "k", factory)
	for b.Loop() {
		susp.GetOrCreate(c, "k", factory)
	}
}

// BenchmarkMountBoundaryReady measures mounting a synchronous boundary.
func BenchmarkMountBoundaryReady(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	sc := susp.New()
	boundary := susp.Boundary[int, int]{
		Source:   susp.Ready(42),
		Key:      "k",
		Fallback: 0,
		Render:   func(n int) int { return n },
	}
	for b.Loop() {
		susp.MountBoundary(sc, boundary)
	}
}

// BenchmarkSettleReveal measures the full pending round-trip:
// mount, settle, tick.
func BenchmarkSettleReveal(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	sc := susp.New()
	for b.Loop() {
		p := susp.NewPromise[int]()
		susp.MountBoundary(sc, susp.Boundary[int, int]{
			Source: susp.Eventually(p),
			Key:    "",
			Render: func(n int) int { return n },
		})
		p.Resolve(1)
		sc.Tick()
	}
}
