package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 64)}
}

func TestArrowKeys(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	feed(s, "\x1b[D")
	in := readInputAt(s, now)
	if !in.Left || in.Right || in.Escape {
		t.Fatalf("left arrow: %+v", in)
	}

	feed(s, "\x1b[C")
	in = readInputAt(s, now.Add(keyHoldDuration+time.Millisecond))
	if !in.Right || in.Left {
		t.Fatalf("right arrow after left expired: %+v", in)
	}
}

func TestSimultaneousKeys(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	feed(s, "a ")
	in := readInputAt(s, now)
	if !in.Left || !in.Space {
		t.Fatalf("expected left and space held: %+v", in)
	}
	if string(in.Pressed) != "a " {
		t.Fatalf("Pressed = %q", in.Pressed)
	}
}

func TestKeyHoldWindow(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	feed(s, "d")
	readInputAt(s, now)

	if in := readInputAt(s, now.Add(keyHoldDuration/2)); !in.Right {
		t.Fatal("key should still be held inside the window")
	}
	if in := readInputAt(s, now.Add(keyHoldDuration)); in.Right {
		t.Fatal("key should be released after the window")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	feed(s, "\r")
	readInputAt(s, now)
	ResetKeyInput(s)
	if in := readInputAt(s, now); in.Enter {
		t.Fatal("Enter should be cleared by ResetKeyInput")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "Q", "\x03"} {
		s := newTestStream()
		feed(s, key)
		if in := readInputAt(s, time.Now()); !in.Quit {
			t.Errorf("%q should quit", key)
		}
	}
}

func TestStreamReportsClosed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))
	deadline := time.Now().Add(time.Second)
	var sawSpace bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawSpace = sawSpace || in.Space
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !sawSpace {
		t.Fatal("space byte was not delivered")
	}
	if !ReadInput(s).Closed {
		t.Fatal("stream should report closed after EOF")
	}
}
