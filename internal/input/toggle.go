package input

// Toggle turns a held button into single presses.
//
// A press fires on the frame the button goes from released to held, and only
// when at least Cooldown frames have passed since the previous press. Holding
// the button never fires again.
type Toggle struct {
	Cooldown int

	wasHeld   bool
	remaining int
}

func NewToggle(cooldown int) *Toggle {
	return &Toggle{Cooldown: cooldown}
}

// Update must be called exactly once per frame with the current button state.
func (t *Toggle) Update(held bool) bool {
	if t.remaining > 0 {
		t.remaining--
	}
	pressed := held && !t.wasHeld && t.remaining == 0
	t.wasHeld = held
	if pressed {
		t.remaining = t.Cooldown
	}
	return pressed
}
