package loop

//go:generate go tool mockgen -destination=./mocks/cue_sink_mock.go -package=mocks . CueSink

// Cue is a sound event emitted by the simulation.
type Cue int

const (
	CueShoot      Cue = iota // A bullet was fired
	CueExplosion             // An alien was destroyed
	CueMusicStart            // A game started
	CueMusicStop             // The game ended
)

// String returns the cue name used on the wire and in logs.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	default:
		return "unknown"
	}
}

// CueSink receives cues synchronously from inside Tick. Implementations must
// not block; playback is fire-and-forget.
type CueSink interface {
	Cue(c Cue)
}

// CueFunc adapts a function to a CueSink.
type CueFunc func(c Cue)

// Cue calls f(c).
func (f CueFunc) Cue(c Cue) { f(c) }

type multiSink []CueSink

func (m multiSink) Cue(c Cue) {
	for _, s := range m {
		s.Cue(c)
	}
}

// MultiSink fans every cue out to all non-nil sinks.
func MultiSink(sinks ...CueSink) CueSink {
	var m multiSink
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

type nopSink struct{}

func (nopSink) Cue(Cue) {}
