package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const SampleRate = 44100

// Pop describes the one-shot hit cue: a sine tone fading linearly to silence.
type Pop struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

func DefaultPop() Pop {
	return Pop{
		Freq:     880,
		Duration: 100 * time.Millisecond,
		Volume:   0.5,
	}
}

// Samples renders the tone as mono samples in [-Volume, Volume].
func (p Pop) Samples(rate int) []float64 {
	n := int(float64(rate) * p.Duration.Seconds())
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		fade := 1 - float64(i)/float64(n)
		out[i] = p.Volume * math.Sin(2*math.Pi*p.Freq*t) * fade
	}
	return out
}

// PCM16 encodes mono samples as 16-bit little-endian stereo frames.
func PCM16(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := int16(s * 32767)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

// Streamer returns the cue as a finite beep stream.
func (p Pop) Streamer(rate beep.SampleRate) beep.Streamer {
	return &bufferStreamer{samples: p.Samples(int(rate))}
}

type bufferStreamer struct {
	samples []float64
	pos     int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.samples) {
			break
		}
		samples[i][0] = s.samples[s.pos]
		samples[i][1] = s.samples[s.pos]
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
