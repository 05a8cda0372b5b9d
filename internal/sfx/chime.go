// Package sfx plays the short tone that marks the start of a new orbit.
package sfx

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/lucasb-eyer/go-colorful"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/0x0caf/color-dancing/internal/config"
)

var logger = logxi.New("color-dancing.sfx")

// Chime plays through the shared speaker. A Chime whose speaker failed to
// initialize stays silent.
type Chime struct {
	sampleRate beep.SampleRate
	enabled    bool
}

// NewChime initializes the speaker. On failure it still returns a usable,
// silent Chime together with the error.
func NewChime(sr beep.SampleRate) (*Chime, error) {
	c := &Chime{sampleRate: sr}
	if err := speaker.Init(sr, sr.N(config.ChimeBuffer)); err != nil {
		return c, errors.Wrap(err, "initializing speaker")
	}
	c.enabled = true
	return c, nil
}

// Enabled reports whether the speaker is available.
func (c *Chime) Enabled() bool {
	return c != nil && c.enabled
}

// Play queues a tone pitched from the hue of base.
func (c *Chime) Play(base colorful.Color) {
	if !c.Enabled() {
		return
	}
	freq := Pitch(base)
	logger.Debug("chime", "hz", freq)
	speaker.Play(Tone(c.sampleRate, freq, config.ChimeDuration, config.ChimeGain))
}

// Pitch maps hue onto one octave above config.ChimeBaseHz.
func Pitch(base colorful.Color) float64 {
	h, _, _ := base.Hsv()
	return config.ChimeBaseHz * math.Pow(2, h/360)
}

// Tone is a sine wave of the given frequency that fades out linearly over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	gain = clamp01(gain)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env * gain
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
