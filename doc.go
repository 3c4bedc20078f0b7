// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package susp resolves maybe-already-available values inside suspendable
// computations via algebraic effects on [code.hybscloud.com/kont].
//
// A [Streamable] carries a value of T that is available now or later. The
// [Resolve] effect yields the value either way, suspending the computation
// while a pending source is unsettled. A keyed identity [Cache] guarantees
// that repeated resolution attempts for one logical data request observe a
// single [Promise] instance, no matter how many times the input value is
// reconstructed — the property that keeps re-rendering consumers from
// minting a fresh suspension source on every pass.
//
// # Architecture
//
//   - Sources: [Promise] is a one-shot pending computation (pending →
//     fulfilled|rejected, monotonic). Settlement is published through a bounded
//     lock-free SPSC queue via [code.hybscloud.com/lfq]. [Ready] and [Eventually] build Streamables.
//   - Identity: [Cache] maps a caller-supplied stable key to the single promise
//     created for that logical request. [GetOrCreate] is create-if-absent; [Cache.Invalidate] cuts a key loose.
//   - Non-blocking: resolution dispatch returns [code.hybscloud.com/iox.ErrWouldBlock] while unsettled.
//   - Error Handling: a rejected source short-circuits returning [code.hybscloud.com/kont.Either]; rejections propagate unmodified and are never retried.
//
// # API Topologies
//
//   - Operations: [Demand] via [Resolve]. Cont-world: [ResolveBind], [ResolveMap]. Expr-world: [ExprResolve], [ExprResolveBind], [ExprResolveMap]. Bridge via [Reify] and [Reflect].
//   - Stepping: [Step] and [Advance] (or [StepEither]/[AdvanceEither]) evaluate one effect at a time, making resolution easy to drive from an external render loop.
//   - Blocking: [Exec], [ExecExpr] (and Either variants) wait past the settlement boundary using adaptive backoff.
//   - Boundaries: [Boundary] pairs a source with a fallback view and a render function; [MountBoundary] parks it on a [Scheduler], [Scheduler.Tick] and [Scheduler.Wait] drive every mount. Independent mounts reveal independently, in settlement order.
//
// # Example
//
//	sc := susp.New()
//	p := susp.NewPromise[[]string]()
//	m := susp.MountBoundary(sc, susp.Boundary[[]string, string]{
//		Source:   susp.Eventually(p),
//		Key:      "products",
//		Fallback: "skeleton",
//		Render:   func(items []string) string { return strings.Join(items, ",") },
//	})
//	// m.View() == "skeleton" until the producer settles
//	p.Resolve([]string{"a", "b"})
//	sc.Wait()
//	// m.View() == "a,b"
package susp
