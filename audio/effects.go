package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ShotGenerator synthesizes a descending laser chirp of fixed length
type ShotGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	volume    float64
	samples   int
	release   int
	pos       int
	phase     float64
}

// NewShotGenerator creates a chirp sweeping from startFreq to endFreq over duration
func NewShotGenerator(sr beep.SampleRate, duration, release time.Duration, startFreq, endFreq, volume float64) *ShotGenerator {
	return &ShotGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		samples:   sr.N(duration),
		release:   sr.N(release),
	}
}

func (g *ShotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		// Exponential sweep sounds more natural than linear for pitch
		freq := g.startFreq * math.Pow(g.endFreq/g.startFreq, progress)

		envelope := 1.0
		if remaining := g.samples - g.pos; remaining < g.release {
			envelope = float64(remaining) / float64(g.release)
		}

		// Square-ish tone: sine plus a third harmonic
		sample := math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(6*math.Pi*g.phase)
		sample *= g.volume * envelope / 1.3

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ShotGenerator) Err() error {
	return nil
}
