package web

import (
	"sync"

	"github.com/tomz197/earthdefense/internal/loop"
)

// InputLatch bridges the websocket reader and the tick loop. Held keys are
// level-triggered; start and restart stay latched until the next Take so a
// press between two ticks is never lost.
type InputLatch struct {
	mu      sync.Mutex
	held    loop.Input
	start   bool
	restart bool
	touched bool
}

// Apply records a message from the browser.
func (l *InputLatch) Apply(m InputMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held.MoveLeft = m.Left
	l.held.MoveRight = m.Right
	l.held.Fire = m.Fire
	l.start = l.start || m.Start
	l.restart = l.restart || m.Restart
	l.touched = true
}

// Take returns the input for one tick and whether any message arrived since
// the previous Take. Latched one-shot signals are cleared.
func (l *InputLatch) Take() (loop.Input, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	in := l.held
	in.Start = l.start
	in.Restart = l.restart
	touched := l.touched
	l.start, l.restart, l.touched = false, false, false
	return in, touched
}
