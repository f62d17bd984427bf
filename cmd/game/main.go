package main

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/earthdefense/internal/audio"
	"github.com/tomz197/earthdefense/internal/config"
	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/client"
)

func main() {
	// Logs go to stderr; run with 2>game.log to keep them off the screen.
	logger, err := config.NewLogger(os.Stderr, "game")
	if err != nil {
		logger.Warn("invalid LOG_LEVEL", "err", err)
	}

	rules, err := loop.RulesByName(config.GetEnv("GAME_RULES", loop.RulesAdvanced))
	if err != nil {
		logger.Fatal("bad GAME_RULES", "err", err)
	}
	seed, err := config.GetEnvInt("GAME_SEED", time.Now().UnixNano())
	if err != nil {
		logger.Warn("ignoring GAME_SEED", "err", err)
	}
	withAudio, err := config.GetEnvBool("GAME_AUDIO", true)
	if err != nil {
		logger.Warn("ignoring GAME_AUDIO", "err", err)
	}

	var sink loop.CueSink
	if withAudio {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Rules: rules,
		Rand:  rand.New(rand.NewSource(seed)),
		Sink:  sink,
	})
	if err := c.Run(context.Background()); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
