package loop_test

import (
	"math/rand"
	"testing"

	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/mocks"
	"github.com/tomz197/earthdefense/internal/object"
	"go.uber.org/mock/gomock"
)

func TestShootCueIsCooldownGated(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)

	rules := loop.DefaultRules()
	rules.SpawnBase, rules.SpawnPerWave = 0, 0

	gomock.InOrder(
		sink.EXPECT().Cue(loop.CueMusicStart),
		sink.EXPECT().Cue(loop.CueShoot).Times(1),
	)

	s := loop.NewSession(rules, rand.New(rand.NewSource(1)), sink)
	s.Tick(loop.Input{Start: true})
	for i := 0; i < rules.Player.Cooldown; i++ {
		s.Tick(loop.Input{Fire: true})
	}
}

func TestMusicStopsOnGameOverAndRestartsOnRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)

	// Every tick spawns an alien fast enough to escape immediately.
	rules := loop.DefaultRules()
	rules.SpawnBase = 1
	rules.AlienTypes = []object.AlienType{{Name: "comet", Speed: 1000, Health: 1}}
	rules.EscapePenalty = 30
	rules.ScoreFloor = -50

	gomock.InOrder(
		sink.EXPECT().Cue(loop.CueMusicStart),
		sink.EXPECT().Cue(loop.CueMusicStop),
		sink.EXPECT().Cue(loop.CueMusicStart),
	)

	s := loop.NewSession(rules, rand.New(rand.NewSource(7)), sink)
	s.Tick(loop.Input{Start: true})
	s.Tick(loop.Input{})
	if s.State() != loop.GameStatePlaying || s.Score() != -30 {
		t.Fatalf("after one escape: state=%v score=%d, want playing and -30", s.State(), s.Score())
	}
	s.Tick(loop.Input{})
	if s.State() != loop.GameStateGameOver {
		t.Fatalf("state = %v, want %v", s.State(), loop.GameStateGameOver)
	}

	s.Tick(loop.Input{Fire: true})
	s.Tick(loop.Input{Restart: true})
	if s.State() != loop.GameStatePlaying || s.Score() != 0 || s.Wave() != 1 {
		t.Fatalf("after restart: state=%v score=%d wave=%d", s.State(), s.Score(), s.Wave())
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockCueSink(ctrl)
	b := mocks.NewMockCueSink(ctrl)
	a.EXPECT().Cue(loop.CueExplosion)
	b.EXPECT().Cue(loop.CueExplosion)

	loop.MultiSink(a, nil, b).Cue(loop.CueExplosion)
}

func TestCueNames(t *testing.T) {
	want := map[loop.Cue]string{
		loop.CueShoot:      "shoot",
		loop.CueExplosion:  "explosion",
		loop.CueMusicStart: "music-start",
		loop.CueMusicStop:  "music-stop",
	}
	for c, name := range want {
		if c.String() != name {
			t.Fatalf("Cue(%d).String() = %q, want %q", int(c), c.String(), name)
		}
	}
}
