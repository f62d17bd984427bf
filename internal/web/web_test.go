package web

import (
	"context"
	"math/rand"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/server"
	"github.com/tomz197/earthdefense/internal/object"
)

func TestInputLatch(t *testing.T) {
	var l InputLatch

	l.Apply(InputMessage{Left: true, Start: true})
	l.Apply(InputMessage{Left: true, Fire: true})

	in, touched := l.Take()
	if !touched {
		t.Fatal("Take should report new messages")
	}
	want := loop.Input{MoveLeft: true, Fire: true, Start: true}
	if in != want {
		t.Fatalf("Take = %+v, want %+v", in, want)
	}

	in, touched = l.Take()
	if touched {
		t.Fatal("no messages since the last Take")
	}
	if in.Start || !in.MoveLeft || !in.Fire {
		t.Fatalf("held keys should persist and start should clear: %+v", in)
	}
}

func TestNewFrame(t *testing.T) {
	snap := loop.Snapshot{
		State:  loop.GameStatePlaying,
		Score:  40,
		Wave:   2,
		Screen: object.Screen{Width: 800, Height: 600},
		Player: object.Player{X: 380, Y: 500, Width: 40, Height: 40},
		Aliens: []object.Alien{{X: 10, Y: 20, Width: 40, Height: 40, Tier: 1, Pattern: object.PatternZigzag, Phase: 0.3}},
		Particles: []object.Particle{{X: 1, Y: 2, Radius: 3, Color: colorful.Color{R: 1, G: 0.5, B: 0}}},
	}

	f := NewFrame(snap, []loop.Cue{loop.CueExplosion})
	if f.State != "playing" || f.Score != 40 || f.Wave != 2 {
		t.Fatalf("header = %s %d %d", f.State, f.Score, f.Wave)
	}
	if f.Player != (Box{X: 380, Y: 500, W: 40, H: 40}) {
		t.Fatalf("player = %+v", f.Player)
	}
	if len(f.Aliens) != 1 || f.Aliens[0].Pattern != "zigzag" || f.Aliens[0].Tier != 1 {
		t.Fatalf("aliens = %+v", f.Aliens)
	}
	if f.Particles[0].Color != "#ff8000" {
		t.Fatalf("particle colour = %s, want #ff8000", f.Particles[0].Color)
	}
	if !slices.Equal(f.Cues, []string{"explosion"}) {
		t.Fatalf("cues = %v", f.Cues)
	}
	if f.Bullets == nil {
		t.Fatal("empty collections should encode as [] not null")
	}
}

func dial(t *testing.T, url string) (*websocket.Conn, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(url, "http")+"?name=tester", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn, ctx
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) Frame {
	t.Helper()
	var f Frame
	if err := wsjson.Read(ctx, conn, &f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func newTestServer(t *testing.T, hub *server.Hub) *httptest.Server {
	t.Helper()
	h := NewHandler(Options{
		Registry:     hub,
		TickInterval: time.Millisecond,
		NewRand:      func() loop.Rand { return rand.New(rand.NewSource(7)) },
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandlerPlaysSession(t *testing.T) {
	hub := server.NewHub(nil)
	srv := newTestServer(t, hub)
	conn, ctx := dial(t, srv.URL)

	f := readFrame(t, ctx, conn)
	if f.State != "start" || f.Width != 800 || f.Height != 600 {
		t.Fatalf("first frame = %s %vx%v", f.State, f.Width, f.Height)
	}

	if err := wsjson.Write(ctx, conn, InputMessage{Start: true}); err != nil {
		t.Fatal(err)
	}

	var cues []string
	for f.State != "playing" {
		f = readFrame(t, ctx, conn)
		cues = append(cues, f.Cues...)
	}
	if !slices.Contains(cues, "music-start") {
		t.Fatalf("cues = %v, want music-start", cues)
	}
	if f.Score != 0 || f.Wave != 1 {
		t.Fatalf("fresh game = score %d wave %d", f.Score, f.Wave)
	}

	if err := wsjson.Write(ctx, conn, InputMessage{Fire: true}); err != nil {
		t.Fatal(err)
	}
	for len(f.Bullets) == 0 {
		f = readFrame(t, ctx, conn)
	}

	if hub.Count() != 1 {
		t.Fatalf("hub count = %d, want 1", hub.Count())
	}
	conn.Close(websocket.StatusNormalClosure, "bye")

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Count() != 0 {
		t.Fatal("connection was not unregistered")
	}
}

func TestHandlerShutdown(t *testing.T) {
	hub := server.NewHub(nil)
	srv := newTestServer(t, hub)
	conn, ctx := dial(t, srv.URL)

	f := readFrame(t, ctx, conn)

	go hub.Shutdown(2 * time.Second)

	for !f.Shutdown {
		f = readFrame(t, ctx, conn)
	}

	_, _, err := conn.Read(ctx)
	if got := websocket.CloseStatus(err); got != websocket.StatusGoingAway {
		t.Fatalf("close status = %v, want %v", got, websocket.StatusGoingAway)
	}
}
