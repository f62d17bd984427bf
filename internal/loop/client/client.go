// Package client runs one terminal player: it reads keys, ticks a private
// loop.Session at a fixed rate and draws each frame as ANSI text.
package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/earthdefense/internal/draw"
	"github.com/tomz197/earthdefense/internal/input"
	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/config"
	"github.com/tomz197/earthdefense/internal/loop/server"
)

// Client handles rendering and input for a single connection.
type Client struct {
	registry     server.Registry
	handle       *server.ClientHandle
	session      *loop.Session
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	activity     *server.Activity
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	stars        []star
	bellEnabled  bool
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	// Rules defaults to loop.DefaultRules when its Name is empty.
	Rules loop.Rules
	// Rand defaults to a time-seeded math/rand source.
	Rand loop.Rand
	// Sink receives every cue in addition to the client's own handling.
	Sink loop.CueSink
	// Bell rings the terminal bell on explosions.
	Bell bool
	// Registry is optional; without it the client plays standalone.
	Registry server.Registry
	Logger   *log.Logger
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	rules := opts.Rules
	if rules.Name == "" {
		rules = loop.DefaultRules()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, rules.Screen.Width, rules.Screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		registry:     opts.Registry,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		activity:     server.NewActivity(time.Now()),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		stars:        newStarField(rules.Screen.Width, rules.Screen.Height),
		bellEnabled:  opts.Bell,
	}
	if c.registry != nil {
		c.handle = c.registry.Register(opts.Username)
	}
	c.session = loop.NewSession(rules, rng, loop.MultiSink(opts.Sink, loop.CueFunc(c.onCue)))
	return c
}

// Run starts the client loop. Blocks until the player quits, the input
// ends, the context is cancelled or the host shutdown countdown expires.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ResetTerminal(c.writer)
	draw.ClearScreen(c.writer)

	if c.handle != nil {
		defer c.registry.Unregister(c.handle.ID)
	}

	lastTime := time.Now()

	for c.state.Running {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.tick(input.ReadInput(c.inputStream), frameStart); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// tick runs one frame with already-decoded input.
func (c *Client) tick(in input.Input, now time.Time) error {
	c.processInput(in, now)
	c.processServerEvents()
	c.updateScreen()

	if c.state.shutdown {
		c.updateShutdownState()
	} else {
		c.updateSession()
	}

	return c.drawFrame()
}

// processInput records the frame's keys and applies the inactivity policy.
func (c *Client) processInput(in input.Input, now time.Time) {
	c.state.Input = in

	if len(in.Pressed) > 0 {
		c.activity.Touch(now)
	}
	warn, disconnect, remaining := c.activity.Check(now)
	c.state.isInactive = warn
	c.state.inactiveRemaining = remaining
	if disconnect {
		c.logger.Info("disconnecting idle client", "user", c.username())
		c.state.Running = false
	}

	if in.Quit || in.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the registry.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.shutdown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 0), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 0), config.MaxTermHeight)
	offsetCol = max(termWidth-renderWidth, 0) / 2
	offsetRow = max(termHeight-renderHeight, 0) / 2
	return
}

// updateSession feeds the frame's keys to the session and tracks the
// game-over screen.
func (c *Client) updateSession() {
	before := c.session.State()
	c.session.Tick(mapInput(before, c.state.Input, c.state.gameOverTicks))
	after := c.session.State()

	if before != loop.GameStatePlaying && after == loop.GameStatePlaying {
		// Keys held to start must not carry into the first frames of play.
		input.ResetKeyInput(c.inputStream)
		c.state.gameOverTicks = 0
		c.state.reported = false
	}

	if after == loop.GameStateGameOver {
		c.state.gameOverTicks++
		if !c.state.reported {
			c.state.reported = true
			if c.handle != nil {
				c.registry.ReportScore(c.handle.ID, c.session.Score(), c.session.Wave())
			}
		}
	}
}

// mapInput translates decoded keys into a session input for the given phase.
// SPACE fires while playing and doubles as start and restart elsewhere.
func mapInput(phase loop.GameState, in input.Input, gameOverTicks int) loop.Input {
	out := loop.Input{MoveLeft: in.Left, MoveRight: in.Right}
	action := in.Space || in.Enter
	switch phase {
	case loop.GameStateStart:
		out.Start = action
	case loop.GameStatePlaying:
		out.Fire = in.Space
	case loop.GameStateGameOver:
		out.Restart = action && gameOverTicks >= config.RestartDelayTicks
	}
	return out
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

// onCue handles cues the terminal itself can express.
func (c *Client) onCue(cue loop.Cue) {
	if cue == loop.CueExplosion && c.bellEnabled {
		c.state.bell = true
	}
}

func (c *Client) username() string {
	if c.handle == nil {
		return ""
	}
	return c.handle.Username
}
