package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mkalb/slither/internal/config"
	"github.com/mkalb/slither/internal/loop"
	"github.com/mkalb/slither/internal/score"
	"golang.org/x/term"
)

const defaultScoresPath = "high_scores.json"

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	store := score.NewStore(config.GetEnv("SNAKE_SCORES", defaultScoresPath))

	reader := bufio.NewReader(os.Stdin)
	shell := loop.NewShell(reader, os.Stdout, store, loop.Options{})
	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
