package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ember/internal/chronicle"
	"ember/internal/console"
	"ember/internal/dice"
	"ember/internal/game"
	"ember/internal/story"
)

var (
	seed          int64
	chroniclePath string
	verbose       bool
	noColor       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new adventure",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	playCmd.Flags().StringVar(&chroniclePath, "chronicle", "", "write an adventure chronicle PDF to this path at the epilogue")
	playCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "disable terminal colors")
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// an interrupt during any prompt is a deliberate, graceful exit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println("\nGoodbye.")
		os.Exit(0)
	}()

	catalog, err := game.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	ui := console.New(os.Stdin, os.Stdout, console.WithColor(!noColor))
	roller := dice.New(seed)
	engine := &game.Engine{Roller: roller, UI: ui, Input: ui}

	session := story.NewSession(ui, roller, catalog, engine)
	ending := session.Run()
	if ending == nil {
		return nil
	}

	if chroniclePath != "" {
		b, err := chronicle.Generate(session.Player, *ending)
		if err != nil {
			slog.Warn("chronicle generation failed", "error", err)
			return nil
		}
		if err := os.WriteFile(chroniclePath, b, 0o600); err != nil {
			slog.Warn("chronicle write failed", "path", chroniclePath, "error", err)
			return nil
		}
		ui.Sayf("Your chronicle was written to %s.", chroniclePath)
	}
	return nil
}
