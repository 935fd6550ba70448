package sfx

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// chime is a sine tone with a fast attack and exponential decay.
type chime struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
}

func newChime(sr beep.SampleRate, freq, volume float64, d time.Duration) *chime {
	return &chime{
		sr:     sr,
		freq:   freq,
		volume: volume,
		total:  sr.N(d),
	}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		t := float64(c.pos) / float64(c.sr)
		attack := math.Min(t/0.005, 1)
		env := attack * math.Exp(-t*12)
		// fifth above for a brighter tone
		s := 0.7*math.Sin(2*math.Pi*c.freq*t) + 0.3*math.Sin(2*math.Pi*c.freq*1.5*t)
		v := c.volume * env * s
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
