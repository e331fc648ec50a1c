package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

const testRate = beep.SampleRate(1000)

// drain reads a streamer to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 64)
	for total < limit {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			assert.Equal(t, smp[0], smp[1], "channels must match")
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestPickupHasFixedLength(t *testing.T) {
	g := NewPickupGenerator(testRate, 100, 150*time.Millisecond)
	total, peak := drain(t, g, 10000)
	assert.Equal(t, 150, total)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)

	n, ok := g.Stream(make([][2]float64, 8))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
	assert.NoError(t, g.Err())
}

func TestExplosionHasFixedLength(t *testing.T) {
	g := NewExplosionGenerator(testRate, 300*time.Millisecond, 7)
	total, peak := drain(t, g, 10000)
	assert.Equal(t, 300, total)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestMusicNeverEnds(t *testing.T) {
	g := NewMusicGenerator(testRate, 50*time.Millisecond)
	total, peak := drain(t, g, 5000)
	assert.GreaterOrEqual(t, total, 5000)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestSoundString(t *testing.T) {
	assert.Equal(t, "pickup", SoundPickup.String())
	assert.Equal(t, "explosion", SoundExplosion.String())
	assert.Equal(t, "unknown", Sound(9).String())
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	sm.Play(SoundPickup)
	sm.SetMusicPlaying(true)
	sm.Cleanup()
}
