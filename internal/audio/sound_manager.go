package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	pickupFreq   = 880
	pickupLength = 120 * time.Millisecond
	blastLength  = 600 * time.Millisecond
	musicBeat    = 400 * time.Millisecond
)

// SoundManager is the beep-backed Sink. Sound effects are mixed over a looping
// music track that starts paused.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	blasts      int64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the (paused) music track.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	sm.music = &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate, musicBeat), Paused: true}
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes in a one-shot sound effect.
func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch sound {
	case SoundPickup:
		streamer = NewPickupGenerator(sampleRate, pickupFreq, pickupLength)
	case SoundExplosion:
		sm.blasts++
		streamer = NewExplosionGenerator(sampleRate, blastLength, time.Now().UnixNano()+sm.blasts)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMusicPlaying pauses or resumes the music track.
func (sm *SoundManager) SetMusicPlaying(playing bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.music.Paused = !playing
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
