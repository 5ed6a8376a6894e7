package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/games/runner"
	"github.com/vovakirdan/realm-runner/internal/platform/tui"
	"github.com/vovakirdan/realm-runner/internal/score"
	"github.com/vovakirdan/realm-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start an endless run.

Controls:
  Left/Right, A/D  - Steer
  Space/Up/W       - Jump (tap for a short hop)
  E/Tab            - Toggle light/shadow realm
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options (run speed only):
  easy   - Start slow, forgiving platforms
  normal - Start at 30% of the speed ramp
  hard   - Start at 70%, more crumbling platforms
  fixed  - No speed progression

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --log-file runner.log --log-level debug
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns stdout, so logs only go to a file.
	logger, closer, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Storage is optional; the run still works with in-memory prefs.
	var prefs score.Prefs
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		prefs = store
		defer store.Close()
	}

	game, err := runner.New(cfg, prefs, logger)
	if err != nil {
		return err
	}

	logger.Info("starting run", "seed", runtime.Seed, "fps", runtime.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, runtime, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
