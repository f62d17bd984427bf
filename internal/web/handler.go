package web

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/config"
	"github.com/tomz197/earthdefense/internal/loop/server"
)

// Options configures a Handler.
type Options struct {
	// Rules defaults to loop.DefaultRules when its Name is empty.
	Rules loop.Rules
	// Registry defaults to a private hub.
	Registry server.Registry
	Logger   *log.Logger
	// NewRand builds the random source for each connection. Defaults to a
	// time-seeded math/rand source.
	NewRand func() loop.Rand
	// TickInterval defaults to config.TargetFrameTime.
	TickInterval time.Duration
	// InsecureSkipVerify disables the websocket origin check.
	InsecureSkipVerify bool
}

// Handler upgrades requests to websockets and runs one session per connection.
type Handler struct {
	opts Options
}

// NewHandler creates a Handler, filling in defaults.
func NewHandler(opts Options) *Handler {
	if opts.Rules.Name == "" {
		opts.Rules = loop.DefaultRules()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Registry == nil {
		opts.Registry = server.NewHub(opts.Logger)
	}
	if opts.NewRand == nil {
		opts.NewRand = func() loop.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TargetFrameTime
	}
	return &Handler{opts: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.opts.InsecureSkipVerify,
	})
	if err != nil {
		h.opts.Logger.Error("failed to accept websocket", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.CloseNow()

	handle := h.opts.Registry.Register(r.URL.Query().Get("name"))
	defer h.opts.Registry.Unregister(handle.ID)

	err = h.play(r.Context(), conn, handle)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled),
		websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway:
		h.opts.Logger.Debug("websocket closed", "id", handle.ID, "err", err)
	default:
		h.opts.Logger.Warn("websocket session ended", "id", handle.ID, "err", err)
	}
}

// play runs the session until the peer leaves, the host shuts down or the
// player goes idle.
func (h *Handler) play(ctx context.Context, conn *websocket.Conn, handle *server.ClientHandle) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	latch := &InputLatch{}
	go func() {
		for {
			var m InputMessage
			if err := wsjson.Read(ctx, conn, &m); err != nil {
				cancel(err)
				return
			}
			latch.Apply(m)
		}
	}()

	var cues []loop.Cue
	session := loop.NewSession(h.opts.Rules, h.opts.NewRand(), loop.CueFunc(func(c loop.Cue) {
		cues = append(cues, c)
	}))
	activity := server.NewActivity(time.Now())

	ticker := time.NewTicker(h.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)

		case ev := <-handle.EventsCh:
			if ev.Type == server.EventServerShutdown {
				frame := NewFrame(session.Snapshot(), nil)
				frame.Shutdown = true
				if err := wsjson.Write(ctx, conn, frame); err != nil {
					return err
				}
				return conn.Close(websocket.StatusGoingAway, "server shutting down")
			}

		case now := <-ticker.C:
			in, touched := latch.Take()
			if touched {
				activity.Touch(now)
			}
			if _, disconnect, _ := activity.Check(now); disconnect {
				return conn.Close(websocket.StatusPolicyViolation, "inactive")
			}

			before := session.State()
			session.Tick(in)
			if before == loop.GameStatePlaying && session.State() == loop.GameStateGameOver {
				h.opts.Registry.ReportScore(handle.ID, session.Score(), session.Wave())
			}

			err := wsjson.Write(ctx, conn, NewFrame(session.Snapshot(), cues))
			cues = cues[:0]
			if err != nil {
				return err
			}
		}
	}
}
