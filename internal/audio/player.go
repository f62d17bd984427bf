package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/earthdefense/internal/loop"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game cues into sound. It is safe to use before Init or
// after Init failed: cues are then dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	// lock guards mixer changes against the speaker goroutine.
	lock   func()
	unlock func()
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.music = nil
	p.initialized = false
	speaker.Close()
}

// Cue implements loop.CueSink.
func (p *Player) Cue(c loop.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	switch c {
	case loop.CueShoot:
		p.add(ShootSound(sampleRate))
	case loop.CueExplosion:
		p.add(ExplosionSound(sampleRate))
	case loop.CueMusicStart:
		if p.music != nil && !p.music.Paused {
			return
		}
		p.music = &beep.Ctrl{Streamer: NewMusic(sampleRate)}
		p.add(p.music)
	case loop.CueMusicStop:
		if p.music != nil {
			p.lock()
			p.music.Paused = true
			p.music.Streamer = nil
			p.unlock()
			p.music = nil
		}
	}
}

// Playing reports how many streams are mixed right now.
func (p *Player) Playing() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

func (p *Player) add(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

var _ loop.CueSink = (*Player)(nil)
