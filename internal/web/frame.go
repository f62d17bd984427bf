// Package web plays the game over a websocket. The browser sends key state
// as JSON, the server runs a private session and answers with one JSON frame
// per tick.
package web

import (
	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/object"
)

// InputMessage is sent by the browser whenever its key state changes.
// Left, Right and Fire are held state; Start and Restart are one-shot.
type InputMessage struct {
	Left    bool `json:"left"`
	Right   bool `json:"right"`
	Fire    bool `json:"fire"`
	Start   bool `json:"start,omitempty"`
	Restart bool `json:"restart,omitempty"`
}

// Box is an axis-aligned rectangle in playfield units.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// AlienFrame is an alien as drawn by the browser.
type AlienFrame struct {
	Box
	Tier    int     `json:"tier"`
	Pattern string  `json:"pattern"`
	Phase   float64 `json:"phase"`
}

// ParticleFrame is one explosion particle.
type ParticleFrame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Color  string  `json:"color"` // #rrggbb
}

// Frame is the full render state of one tick.
type Frame struct {
	State      string          `json:"state"`
	Score      int             `json:"score"`
	Wave       int             `json:"wave"`
	Background float64         `json:"background"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Player     Box             `json:"player"`
	Bullets    []Box           `json:"bullets"`
	Aliens     []AlienFrame    `json:"aliens"`
	Particles  []ParticleFrame `json:"particles"`
	Cues       []string        `json:"cues,omitempty"`
	Shutdown   bool            `json:"shutdown,omitempty"`
}

// NewFrame converts a snapshot and the cues emitted during its tick.
func NewFrame(snap loop.Snapshot, cues []loop.Cue) Frame {
	f := Frame{
		State:      snap.State.String(),
		Score:      snap.Score,
		Wave:       snap.Wave,
		Background: snap.Background,
		Width:      snap.Screen.Width,
		Height:     snap.Screen.Height,
		Player:     box(snap.Player.X, snap.Player.Y, snap.Player.Width, snap.Player.Height),
		Bullets:    make([]Box, 0, len(snap.Bullets)),
		Aliens:     make([]AlienFrame, 0, len(snap.Aliens)),
		Particles:  make([]ParticleFrame, 0, len(snap.Particles)),
	}
	for _, b := range snap.Bullets {
		f.Bullets = append(f.Bullets, box(b.X, b.Y, b.Width, b.Height))
	}
	for _, a := range snap.Aliens {
		f.Aliens = append(f.Aliens, alienFrame(a))
	}
	for _, p := range snap.Particles {
		f.Particles = append(f.Particles, ParticleFrame{X: p.X, Y: p.Y, Radius: p.Radius, Color: p.Color.Clamped().Hex()})
	}
	for _, c := range cues {
		f.Cues = append(f.Cues, c.String())
	}
	return f
}

func box(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func alienFrame(a object.Alien) AlienFrame {
	return AlienFrame{
		Box:     box(a.X, a.Y, a.Width, a.Height),
		Tier:    a.Tier,
		Pattern: a.Pattern.String(),
		Phase:   a.Phase,
	}
}
