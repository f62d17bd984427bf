// Package audio synthesizes the game's sound cues with beep and plays them
// on the local speaker.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

// NewSweep creates an oscillator whose frequency moves linearly from
// startFreq to endFreq over the duration.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		sweep:    (endFreq - startFreq) / duration.Seconds(),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay applies a linear fade-out over duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.position < d.total {
			vol = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream by a linear factor; 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations.
const (
	shootDuration     = 90 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	musicNoteDuration = 180 * time.Millisecond
)

// ShootSound is a short descending square blip.
func ShootSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(880, 440, shootDuration, WaveSquare, rate)
	return newVolume(NewDecay(osc, shootDuration, rate), 0.15)
}

// ExplosionSound is a decaying noise burst over a low rumble.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
	rumble := NewSweep(120, 40, explosionDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.5))
	return newVolume(NewDecay(beep.Take(rate.N(explosionDuration), mixed), explosionDuration, rate), 0.3)
}

// musicNotes is the background arpeggio in Hz (A minor).
var musicNotes = []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94}

// musicGenerator plays musicNotes forever as soft triangle-ish sine plucks.
type musicGenerator struct {
	rate    beep.SampleRate
	noteLen int
	pos     int
	phase   float64
}

// NewMusic creates an endless background loop.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{rate: rate, noteLen: rate.N(musicNoteDuration)}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.noteLen) % len(musicNotes)
		inNote := float64(g.pos%g.noteLen) / float64(g.noteLen)

		env := 1 - inNote
		val := 0.08 * env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += musicNotes[note] / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
