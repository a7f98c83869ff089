package gym

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// RestTimer counts down the rest between sets once per second. It is
// independent of the session clock; pausing it does not block set editing.
// It is safe for concurrent use so that Run can drive it from a goroutine.
type RestTimer struct {
	mu        sync.Mutex
	duration  int
	remaining int
	running   bool
	onZero    func()
}

func newRestTimer(seconds int) *RestTimer {
	return &RestTimer{
		duration:  seconds,
		remaining: seconds,
		running:   true,
		onZero:    nil,
	}
}

// OnZero registers a callback fired when the countdown reaches zero, e.g. a
// haptic pulse.
func (rt *RestTimer) OnZero(callback func()) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.onZero = callback
}

// Remaining returns the seconds left.
func (rt *RestTimer) Remaining() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.remaining
}

// Running reports whether the countdown is ticking.
func (rt *RestTimer) Running() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.running
}

// Pause suspends the countdown.
func (rt *RestTimer) Pause() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.running = false
}

// Resume restarts a paused countdown. Has no effect at zero.
func (rt *RestTimer) Resume() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.remaining > 0 {
		rt.running = true
	}
}

// Reset restores the countdown to its original duration.
func (rt *RestTimer) Reset() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.remaining = rt.duration
}

// Retarget switches the countdown to one of the preset durations and
// restarts it.
func (rt *RestTimer) Retarget(seconds int) error {
	if !slices.Contains(RestPresets, seconds) {
		return fmt.Errorf("rest duration %ds is not a preset", seconds)
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.duration = seconds
	rt.remaining = seconds
	rt.running = true
	return nil
}

// Tick advances the countdown by one second. Returns true when this tick
// reached zero, which also fires the OnZero callback and stops the timer.
func (rt *RestTimer) Tick() bool {
	rt.mu.Lock()
	if !rt.running || rt.remaining <= 0 {
		rt.mu.Unlock()
		return false
	}
	rt.remaining--
	done := rt.remaining == 0
	if done {
		rt.running = false
	}
	callback := rt.onZero
	rt.mu.Unlock()

	if done && callback != nil {
		callback()
	}
	return done
}

// Run drives the countdown with a wall-clock ticker until it reaches zero or
// the context is cancelled.
func (rt *RestTimer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if rt.Tick() {
				return
			}
		}
	}
}
