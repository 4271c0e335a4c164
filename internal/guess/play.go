package guess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

var (
	// ErrReadInput wraps failures reading from the input stream.
	ErrReadInput = errors.New("failed to read line")
	// ErrInputClosed means the input ended before the secret was guessed.
	ErrInputClosed = errors.New("input closed before the secret number was guessed")
)

// Fixed lines printed by Play.
const (
	Banner = "Guess the number!"
	Prompt = "Please input your guess."
)

// Result summarizes a finished game.
type Result struct {
	Attempts int // guesses that parsed and were compared
	Invalid  int // lines rejected by ParseGuess
}

// lineRead is the outcome of one ReadString call.
type lineRead struct {
	line string
	err  error
}

// readLine reads one line in a goroutine so a blocked read can be abandoned
// when ctx is done. The goroutine exits once the underlying read returns.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineRead, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineRead{line: line, err: err}
	}()

	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Play runs the prompt/read/compare loop until the secret is guessed.
// Unparseable lines are dropped and the player is prompted again.
// Cancelling ctx returns ctx.Err() immediately, even while waiting for input.
func Play(ctx context.Context, game *Game, in io.Reader, out io.Writer, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	reader := bufio.NewReader(in)

	if _, err := fmt.Fprintln(out, Banner); err != nil {
		return res, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if _, err := fmt.Fprintln(out, Prompt); err != nil {
			return res, err
		}

		line, err := readLine(ctx, reader)
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debug("Game cancelled", zap.Int("attempts", res.Attempts))
			return res, ctxErr
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return res, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			logger.Debug("Input closed", zap.Int("attempts", res.Attempts))
			return res, ErrInputClosed
		}

		guess, perr := ParseGuess(line)
		if perr != nil {
			res.Invalid++
			logger.Debug("Ignoring unparseable guess", zap.Error(perr))
			continue
		}
		res.Attempts++

		if _, err := fmt.Fprintf(out, "You guessed: %d\n", guess); err != nil {
			return res, err
		}

		outcome := game.Compare(guess)
		logger.Debug("Guess compared",
			zap.Uint32("guess", guess),
			zap.Stringer("outcome", outcome),
			zap.Int("attempt", res.Attempts))

		if _, err := fmt.Fprintln(out, outcome); err != nil {
			return res, err
		}
		if outcome == Win {
			return res, nil
		}
	}
}
