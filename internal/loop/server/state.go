package server

import (
	"sort"
	"time"

	"github.com/tomz197/earthdefense/internal/loop/config"
)

// topScoreCount is how many entries the leaderboard keeps.
const topScoreCount = 5

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	Wave     int
	clientID string
	seq      int // Insertion order; earlier entries win ties
}

// leaderboard keeps the best n scores, one entry per client.
type leaderboard struct {
	n    int
	seq  int
	best []TopScoreEntry
}

func newLeaderboard(n int) *leaderboard {
	return &leaderboard{n: n}
}

func (l *leaderboard) add(e TopScoreEntry) {
	l.seq++
	e.seq = l.seq

	for i := range l.best {
		if l.best[i].clientID == e.clientID {
			if e.Score <= l.best[i].Score {
				return
			}
			l.best[i] = e
			l.sort()
			return
		}
	}

	l.best = append(l.best, e)
	l.sort()
	if len(l.best) > l.n {
		l.best = l.best[:l.n]
	}
}

func (l *leaderboard) sort() {
	sort.Slice(l.best, func(i, j int) bool {
		if l.best[i].Score != l.best[j].Score {
			return l.best[i].Score > l.best[j].Score
		}
		return l.best[i].seq < l.best[j].seq
	})
}

func (l *leaderboard) entries() []TopScoreEntry {
	return append([]TopScoreEntry(nil), l.best...)
}

// Activity tracks the last time a client sent input.
type Activity struct {
	last time.Time
}

// NewActivity starts tracking from now.
func NewActivity(now time.Time) *Activity {
	return &Activity{last: now}
}

// Touch records input at now.
func (a *Activity) Touch(now time.Time) {
	a.last = now
}

// Check reports whether the client should be warned or disconnected, and how
// many whole seconds remain before disconnection.
func (a *Activity) Check(now time.Time) (warn, disconnect bool, remaining int) {
	idle := now.Sub(a.last).Seconds()
	remaining = int(config.InactivityDisconnectUser - idle)
	switch {
	case idle > config.InactivityDisconnectUser:
		return true, true, 0
	case idle > config.InactivityWarnUser:
		return true, false, remaining
	}
	return false, false, remaining
}
