package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"playground/cmd/playground/ui"
	"playground/internal/guess"
	"playground/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	guessMin  uint32
	guessMax  uint32
	guessSeed uint64
	guessTUI  bool
)

// errGameAborted is returned when the TUI is closed before a win.
var errGameAborted = errors.New("game aborted before the secret number was guessed")

// guessCmd runs the number-guessing game
var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the secret number",
	Long: `Draws a secret number (1 to 100 unless configured otherwise) and reads
guesses from standard input, one per line, until one matches.

Lines that are not unsigned integers are ignored and the prompt repeats.

Examples:
  playground guess
  playground guess --seed 7        # same secret every run
  playground guess --min 1 --max 10
  playground guess --tui`,
	Args: cobra.NoArgs,
	RunE: runGuess,
}

// resolveGuessSettings merges config with flags the user actually set.
func resolveGuessSettings(cmd *cobra.Command) (guess.Range, uint64, error) {
	r := guess.Range{Min: cfg.Guess.Min, Max: cfg.Guess.Max}
	seed := cfg.Guess.Seed

	flags := cmd.Flags()
	if flags.Changed("min") {
		r.Min = guessMin
	}
	if flags.Changed("max") {
		r.Max = guessMax
	}
	if flags.Changed("seed") {
		seed = guessSeed
	}

	if r.Min > r.Max {
		return r, seed, fmt.Errorf("invalid range %s: min is greater than max", r)
	}
	return r, seed, nil
}

func runGuess(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	r, seed, err := resolveGuessSettings(cmd)
	if err != nil {
		return err
	}

	log := logging.Get(logging.CategoryGame).With(zap.String("run", uuid.New().String()))
	game := guess.NewGame(guess.NewSecret(guess.NewRand(seed), r))
	log.Debug("Secret drawn",
		zap.Stringer("range", r),
		zap.Bool("seeded", seed != 0))

	if guessTUI {
		return runGuessTUI(ctx, cmd, game, r, log)
	}

	res, err := guess.Play(ctx, game, cmd.InOrStdin(), cmd.OutOrStdout(), log)
	if err != nil {
		log.Debug("Game ended without a win",
			zap.Int("attempts", res.Attempts),
			zap.Error(err))
		return err
	}
	log.Info("Game won",
		zap.Uint32("secret", game.Secret()),
		zap.Int("attempts", res.Attempts),
		zap.Int("invalid", res.Invalid))
	return nil
}

func runGuessTUI(ctx context.Context, cmd *cobra.Command, game *guess.Game, r guess.Range, log *zap.Logger) error {
	model := ui.NewGuessModel(game, r, ui.NewStyles(ui.ThemeByName(cfg.UX.Theme)), log)

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("guess TUI failed: %w", err)
	}

	m, ok := final.(ui.GuessModel)
	if !ok || !m.Won() {
		return errGameAborted
	}
	res := m.Result()
	log.Info("Game won",
		zap.Uint32("secret", game.Secret()),
		zap.Int("attempts", res.Attempts),
		zap.Int("invalid", res.Invalid))
	return nil
}
