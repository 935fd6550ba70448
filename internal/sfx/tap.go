package sfx

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes audio through unchanged and keeps the squared mono value
// of the most recent samples, so Level can be read from the game goroutine
// while the speaker goroutine streams.
type levelTap struct {
	src beep.Streamer

	mu    sync.Mutex
	power []float64 // ring of squared mono samples
	head  int       // next write position
	count int       // valid entries, up to len(power)
}

func newLevelTap(src beep.Streamer, window int) *levelTap {
	return &levelTap{src: src, power: make([]float64, window)}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 {
		return n, ok
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range samples[:n] {
		mono := (s[0] + s[1]) / 2
		t.power[t.head] = mono * mono
		t.head = (t.head + 1) % len(t.power)
	}
	t.count = min(t.count+n, len(t.power))
	return n, ok
}

func (t *levelTap) Err() error { return t.src.Err() }

// rms averages the last n recorded samples. Fewer are used when fewer have
// been streamed; nothing streamed yet reads as silence.
func (t *levelTap) rms(n int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	n = min(n, t.count)
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 1; i <= n; i++ {
		sum += t.power[(t.head-i+len(t.power))%len(t.power)]
	}
	return math.Sqrt(sum / float64(n))
}
