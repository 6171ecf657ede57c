// internal/termview/chime.go
package termview

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays short tones for match events. A zero Chime is silent.
type Chime struct {
	enabled bool
}

// NewChime opens the speaker. On failure the returned Chime stays silent and
// the error is only worth a log line.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{enabled: true}, nil
}

// tone plays each frequency for d, one after another.
func (c *Chime) tone(d time.Duration, freqs ...float64) {
	if c == nil || !c.enabled {
		return
	}
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(d), sine))
	}
	speaker.Play(beep.Seq(parts...))
}

func (c *Chime) Kill()   { c.tone(50*time.Millisecond, 880) }
func (c *Chime) Escape() { c.tone(120*time.Millisecond, 220) }
func (c *Chime) Wave()   { c.tone(80*time.Millisecond, 660) }

// Over plays a falling pair for a loss and a rising pair for a win.
func (c *Chime) Over(won bool) {
	c.tone(200*time.Millisecond, overPair(won)...)
}

func overPair(won bool) []float64 {
	if won {
		return []float64{880, 1320}
	}
	return []float64{220, 110}
}

func (c *Chime) Close() {
	if c != nil && c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
