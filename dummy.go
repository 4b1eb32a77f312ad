package display

// This file contains fallbacks for boards that lack a particular feature.

import "time"

var lastVBlank time.Time

// Wait until defaultInterval has passed since the previous call, for displays
// that don't signal vblank. If the caller is already late, it returns right
// away.
func dummyWaitForVBlank(defaultInterval time.Duration) {
	now := time.Now()
	if wait := lastVBlank.Add(defaultInterval).Sub(now); wait > 0 {
		time.Sleep(wait)
		now = now.Add(wait)
	}
	lastVBlank = now
}
