package ui

import (
	"fmt"
	"strings"

	"playground/internal/guess"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type guessEntry struct {
	value   uint32
	outcome guess.Outcome
}

// GuessModel is the bubbletea model for the interactive guessing game.
// It shares Game and ParseGuess with the line-based loop, so the rules are identical.
type GuessModel struct {
	game    *guess.Game
	rng     guess.Range
	input   textinput.Model
	styles  Styles
	logger  *zap.Logger
	history []guessEntry
	invalid int
	won     bool
	aborted bool
}

// NewGuessModel creates a focused model ready to accept guesses.
func NewGuessModel(game *guess.Game, r guess.Range, styles Styles, logger *zap.Logger) GuessModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("a number from %d to %d", r.Min, r.Max)
	ti.CharLimit = 10
	ti.Width = 24
	ti.Prompt = "> "
	ti.Focus()

	return GuessModel{
		game:   game,
		rng:    r,
		input:  ti,
		styles: styles,
		logger: logger,
	}
}

func (m GuessModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GuessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GuessModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	n, err := guess.ParseGuess(line)
	if err != nil {
		m.invalid++
		m.logger.Debug("Ignoring unparseable guess", zap.Error(err))
		return m, nil
	}

	outcome := m.game.Compare(n)
	m.history = append(m.history, guessEntry{value: n, outcome: outcome})
	m.logger.Debug("Guess compared",
		zap.Uint32("guess", n),
		zap.Stringer("outcome", outcome),
		zap.Int("attempt", len(m.history)))

	if outcome == guess.Win {
		m.won = true
		m.input.Blur()
		return m, tea.Quit
	}
	return m, nil
}

func (m GuessModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(guess.Banner))
	b.WriteString(" ")
	b.WriteString(m.styles.Subtitle.Render(m.rng.String()))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(fmt.Sprintf("You guessed: %d  ", e.value))
		b.WriteString(m.outcomeStyle(e.outcome).Render(e.outcome.String()))
		b.WriteString("\n")
	}

	switch {
	case m.won:
		b.WriteString("\n")
		b.WriteString(m.styles.Badge.Render(fmt.Sprintf("%d attempts", len(m.history))))
		b.WriteString("\n")
	case m.aborted:
		b.WriteString(m.styles.Error.Render("Bye."))
		b.WriteString("\n")
	default:
		if len(m.history) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Prompt.Render(guess.Prompt))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("enter to guess • esc to quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m GuessModel) outcomeStyle(o guess.Outcome) lipgloss.Style {
	switch o {
	case guess.Win:
		return m.styles.Success
	case guess.TooBig:
		return m.styles.Warning
	default:
		return m.styles.Info
	}
}

// Won reports whether the secret was guessed.
func (m GuessModel) Won() bool { return m.won }

// Aborted reports whether the player quit before winning.
func (m GuessModel) Aborted() bool { return m.aborted }

// Result summarizes the session in the same shape as guess.Play.
func (m GuessModel) Result() guess.Result {
	return guess.Result{Attempts: len(m.history), Invalid: m.invalid}
}
