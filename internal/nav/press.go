package nav

import "time"

// DefaultHoldThreshold is how long a marker must be held to toggle its mark.
const DefaultHoldThreshold = 500 * time.Millisecond

type PressState int

const (
	PressIdle PressState = iota
	PressPressing
	PressHeld
)

// PressOutcome is what a completed gesture asks the caller to do.
type PressOutcome int

const (
	PressNone PressOutcome = iota
	PressActivate
	PressToggleMark
)

// PressMachine tells a click on a marker apart from a long hold.
//
//	Idle --Press--> Pressing --Release (< threshold)--> Idle: Activate
//	                Pressing --Hold (>= threshold)----> Held: ToggleMark
//	                Held     --Release----------------> Idle: nothing
//
// Time is supplied by the caller so the machine stays deterministic. The
// sequence number returned by Press identifies the gesture so a stale hold
// timer from an earlier press is ignored.
type PressMachine struct {
	threshold time.Duration
	state     PressState
	index     int
	started   time.Time
	seq       int
}

func NewPressMachine(threshold time.Duration) *PressMachine {
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &PressMachine{threshold: threshold}
}

func (p *PressMachine) Threshold() time.Duration {
	return p.threshold
}

func (p *PressMachine) State() PressState {
	return p.state
}

// Press starts a gesture on the marker at index and returns its sequence.
func (p *PressMachine) Press(index int, now time.Time) int {
	p.seq++
	p.state = PressPressing
	p.index = index
	p.started = now
	return p.seq
}

// Hold is called when the hold timer for gesture seq fires.
func (p *PressMachine) Hold(seq int, now time.Time) (PressOutcome, int) {
	if p.state != PressPressing || seq != p.seq {
		return PressNone, 0
	}
	if now.Sub(p.started) < p.threshold {
		return PressNone, 0
	}
	p.state = PressHeld
	return PressToggleMark, p.index
}

// Release ends the gesture.
func (p *PressMachine) Release(now time.Time) (PressOutcome, int) {
	state, index := p.state, p.index
	p.state = PressIdle
	switch state {
	case PressPressing:
		if now.Sub(p.started) >= p.threshold {
			return PressToggleMark, index
		}
		return PressActivate, index
	default:
		return PressNone, 0
	}
}

// Cancel abandons the gesture, for example when the pointer leaves the marker.
func (p *PressMachine) Cancel() {
	p.state = PressIdle
}

// Active reports the marker index of a gesture in progress.
func (p *PressMachine) Active() (int, bool) {
	if p.state == PressIdle {
		return 0, false
	}
	return p.index, true
}
