package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PickupGenerator generates a short bright blip with an exponential fade.
type PickupGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewPickupGenerator creates a pickup blip of the given length.
func NewPickupGenerator(sr beep.SampleRate, freq float64, length time.Duration) *PickupGenerator {
	return &PickupGenerator{sr: sr, freq: freq, samples: sr.N(length)}
}

func (g *PickupGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PickupGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates filtered noise over a low rumble.
type ExplosionGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	seed    int64
	last    float64
}

// NewExplosionGenerator creates an explosion of the given length.
func NewExplosionGenerator(sr beep.SampleRate, length time.Duration, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, samples: sr.N(length), seed: seed}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Быстрая атака, медленное затухание
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		// однополюсный НЧ-фильтр, чтобы шум звучал глуше
		g.last += 0.2 * (noise - g.last)

		rumble := 0.35 * math.Sin(2*math.Pi*55*t)
		sample := envelope * (0.5*g.last + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// Bass line for the background loop, in Hz. One note per beat.
var celloLine = []float64{65.41, 65.41, 98.00, 87.31, 73.42, 73.42, 110.00, 98.00}

// MusicGenerator plays an endless cello-like bass line.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// NewMusicGenerator creates a looping bass line at the given tempo.
func NewMusicGenerator(sr beep.SampleRate, beat time.Duration) *MusicGenerator {
	return &MusicGenerator{sr: sr, beat: sr.N(beat)}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := celloLine[(g.pos/g.beat)%len(celloLine)]
		beatPos := g.pos % g.beat
		t := float64(g.pos) / float64(g.sr)
		bt := float64(beatPos) / float64(g.sr)

		// Мягкая атака и спад внутри каждой доли
		attack := math.Min(bt/0.05, 1)
		release := math.Min(float64(g.beat-beatPos)/float64(g.sr)/0.08, 1)
		envelope := attack * release

		// Пила из трёх гармоник ближе к смычковому тембру, чем чистый синус
		sample := math.Sin(2*math.Pi*note*t) + 0.5*math.Sin(4*math.Pi*note*t) + 0.25*math.Sin(6*math.Pi*note*t)
		sample *= 0.08 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
