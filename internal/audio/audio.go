package audio

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundPickup Sound = iota
	SoundExplosion
)

func (s Sound) String() string {
	switch s {
	case SoundPickup:
		return "pickup"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Sink plays sound effects and controls the background music. Calls never
// block the game loop and report nothing back.
type Sink interface {
	Play(sound Sound)
	SetMusicPlaying(playing bool)
}

// Nop is a Sink that discards everything. Used when no audio device is available.
type Nop struct{}

func (Nop) Play(Sound)           {}
func (Nop) SetMusicPlaying(bool) {}
