package ui

import "time"

// Auto-repeat pacing for held pointer actions.
const (
	repeatDelay    = 500 * time.Millisecond
	repeatInterval = 120 * time.Millisecond
)

// Action identifies a repeatable input action tracked by the repeater.
type Action int

const (
	// Scrollbar trough held down: page the viewport.
	ActionScrollUp Action = iota
	ActionScrollDown
	// Drag past the list edge: move the cursor line by line.
	ActionDragUp
	ActionDragDown
)

// repeatState tracks one action's hold cycle: fire on press, go into repeat
// mode after the initial delay, then fire on every interval until release.
type repeatState struct {
	held      bool
	repeating bool
	last      time.Time
}

// Repeater schedules auto-repeat for any number of actions, each with its own
// hold state but shared pacing constants. It is driven by the update loop:
// Press fires the action once, Tick fires it again whenever the schedule says
// so, Release stops the cycle.
type Repeater struct {
	delay    time.Duration
	interval time.Duration
	states   map[Action]*repeatState
}

func NewRepeater() *Repeater {
	return &Repeater{
		delay:    repeatDelay,
		interval: repeatInterval,
		states:   make(map[Action]*repeatState),
	}
}

func (r *Repeater) state(action Action) *repeatState {
	s, ok := r.states[action]
	if !ok {
		s = &repeatState{}
		r.states[action] = s
	}
	return s
}

// Press begins a hold cycle for action and reports that it should fire now.
// Pressing an already-held action restarts its cycle.
func (r *Repeater) Press(action Action, now time.Time) bool {
	s := r.state(action)
	s.held = true
	s.repeating = false
	s.last = now
	return true
}

// Tick reports whether a held action is due to fire again. The first repeat
// waits for the initial delay since the press; subsequent repeats fire once
// per interval.
func (r *Repeater) Tick(action Action, now time.Time) bool {
	s, ok := r.states[action]
	if !ok || !s.held {
		return false
	}
	if !s.repeating {
		if now.Sub(s.last) < r.delay {
			return false
		}
		s.repeating = true
	}
	if now.Sub(s.last) < r.interval {
		return false
	}
	s.last = now
	return true
}

// Held reports whether action is currently in a hold cycle.
func (r *Repeater) Held(action Action) bool {
	s, ok := r.states[action]
	return ok && s.held
}

// Release ends the hold cycle for action.
func (r *Repeater) Release(action Action) {
	s, ok := r.states[action]
	if !ok {
		return
	}
	s.held = false
	s.repeating = false
}

// ReleaseAll ends every hold cycle, e.g. when the pointer button goes up.
func (r *Repeater) ReleaseAll() {
	for _, s := range r.states {
		s.held = false
		s.repeating = false
	}
}

// Active reports whether any action is currently held, i.e. whether the
// update loop still needs to schedule ticks.
func (r *Repeater) Active() bool {
	for _, s := range r.states {
		if s.held {
			return true
		}
	}
	return false
}
