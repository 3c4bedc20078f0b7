// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"code.hybscloud.com/iox"
)

// mounted is a type-erased boundary parked on the scheduler.
type mounted interface {
	// step attempts one non-blocking advance. Reports whether the mount
	// made progress and whether it left the pending state.
	step() (progress, done bool)
}

// Tick makes one non-blocking pass over every parked boundary, advancing
// each whose source settled since the last pass. Settled mounts leave the
// list; the rest stay parked. Reports whether any mount made progress.
//
// Boundaries reveal independently, in settlement order: a pass never
// couples unrelated keys.
func (sc *Scheduler) Tick() bool {
	progress := false
	remaining := sc.mounts[:0]
	for _, m := range sc.mounts {
		p, done := m.step()
		if p {
			progress = true
		}
		if !done {
			remaining = append(remaining, m)
		}
	}
	for i := len(remaining); i < len(sc.mounts); i++ {
		sc.mounts[i] = nil
	}
	sc.mounts = remaining
	return progress
}

// Wait drives every parked boundary to settlement or failure, backing off
// adaptively (iox.Backoff) when no mount can make progress. Does not spawn
// goroutines or create channels. A never-settling source blocks Wait
// indefinitely.
func (sc *Scheduler) Wait() {
	var bo iox.Backoff
	for len(sc.mounts) > 0 {
		if sc.Tick() {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}
