package input

// Control is one button the game loop polls each frame.
type Control int

const (
	TurnLeft Control = iota
	TurnRight
	Thrust
	Reverse
	Fire
	Pause
	Mute
	controlCount
)

var controlNames = [controlCount]string{"turn-left", "turn-right", "thrust", "reverse", "fire", "pause", "mute"}

func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Source reports whether a control is currently held down.
type Source interface {
	Held(c Control) bool
}

// Snapshot is an immutable set of held controls.
type Snapshot uint16

// NewSnapshot returns a snapshot with the given controls held.
func NewSnapshot(held ...Control) Snapshot {
	var s Snapshot
	for _, c := range held {
		s = s.With(c)
	}
	return s
}

// Capture freezes the current state of src.
func Capture(src Source) Snapshot {
	var s Snapshot
	for c := Control(0); c < controlCount; c++ {
		if src.Held(c) {
			s = s.With(c)
		}
	}
	return s
}

func (s Snapshot) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return s&(1<<uint(c)) != 0
}

func (s Snapshot) With(c Control) Snapshot {
	if c < 0 || c >= controlCount {
		return s
	}
	return s | 1<<uint(c)
}
