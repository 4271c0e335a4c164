package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"playground/internal/config"
	"playground/internal/guess"
	"playground/internal/lessons"
	"playground/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestCmd(in string) (*cobra.Command, *bytes.Buffer) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunHello(t *testing.T) {
	cmd, out := newTestCmd("")
	require.NoError(t, runHello(cmd, nil))
	assert.Equal(t, "Hello, world!\n", out.String())
}

func TestRunVariables(t *testing.T) {
	cmd, out := newTestCmd("")
	variablesAll = false
	require.NoError(t, runVariables(cmd, nil))
	assert.Equal(t,
		"The value of x is: 5\nThe value of x in the inner scope is: 12\nThe value of x is: 6\n",
		out.String())

	cmd, out = newTestCmd("")
	variablesAll = true
	defer func() { variablesAll = false }()
	require.NoError(t, runVariables(cmd, nil))
	assert.Contains(t, out.String(), "Three hours in seconds: 10800")
	assert.Contains(t, out.String(), "The number of spaces is: 3")
}

func TestRunGuess_SeededGame(t *testing.T) {
	secret := guess.NewSecret(guess.NewRand(7), guess.DefaultRange)

	wrong := uint32(1)
	if secret == 1 {
		wrong = 2
	}
	input := "abc\n" + strconv.FormatUint(uint64(wrong), 10) + "\n" + strconv.FormatUint(uint64(secret), 10) + "\n"

	cmd, out := newTestCmd(input)
	cfg.Guess.Seed = 7
	require.NoError(t, runGuess(cmd, nil))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Guess the number!\nPlease input your guess.\n"))
	outcome := guess.NewGame(secret).Compare(wrong)
	assert.Contains(t, got, "You guessed: "+strconv.FormatUint(uint64(wrong), 10)+"\n"+outcome.String()+"\n")
	assert.True(t, strings.HasSuffix(got, "You guessed: "+strconv.FormatUint(uint64(secret), 10)+"\nYou win!\n"))
}

func TestRunGuess_InputClosed(t *testing.T) {
	cmd, _ := newTestCmd("")
	err := runGuess(cmd, nil)
	assert.True(t, errors.Is(err, guess.ErrInputClosed))
}

func TestResolveGuessSettings(t *testing.T) {
	newCmd := func() *cobra.Command {
		c, _ := newTestCmd("")
		c.Flags().Uint32Var(&guessMin, "min", 0, "")
		c.Flags().Uint32Var(&guessMax, "max", 0, "")
		c.Flags().Uint64Var(&guessSeed, "seed", 0, "")
		return c
	}

	c := newCmd()
	r, seed, err := resolveGuessSettings(c)
	require.NoError(t, err)
	assert.Equal(t, guess.DefaultRange, r)
	assert.Zero(t, seed)

	c = newCmd()
	require.NoError(t, c.Flags().Set("max", "10"))
	require.NoError(t, c.Flags().Set("seed", "3"))
	r, seed, err = resolveGuessSettings(c)
	require.NoError(t, err)
	assert.Equal(t, guess.Range{Min: 1, Max: 10}, r)
	assert.Equal(t, uint64(3), seed)

	c = newCmd()
	require.NoError(t, c.Flags().Set("min", "50"))
	require.NoError(t, c.Flags().Set("max", "10"))
	_, _, err = resolveGuessSettings(c)
	assert.Error(t, err)
}

func TestListLessons(t *testing.T) {
	cmd, out := newTestCmd("")
	require.NoError(t, listLessons(cmd, nil))
	for _, name := range lessons.Names() {
		assert.Contains(t, out.String(), name)
	}
}

func TestRunExplain_Plain(t *testing.T) {
	cmd, out := newTestCmd("")
	explainPlain = true
	defer func() { explainPlain = false }()

	require.NoError(t, runExplain(cmd, []string{"variables"}))
	assert.True(t, strings.HasPrefix(out.String(), "# Variables"))

	err := runExplain(cmd, []string{"loops"})
	assert.True(t, errors.Is(err, lessons.ErrUnknownLesson))
}

func TestRunSnippet(t *testing.T) {
	cmd, out := newTestCmd("")
	require.NoError(t, runSnippet(cmd, []string{"hello"}))
	assert.Equal(t, "Hello, world!\n", out.String())

	cmd, _ = newTestCmd("")
	err := runSnippet(cmd, []string{"guess"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "standard input")
}

func TestRunSnippet_Source(t *testing.T) {
	cmd, out := newTestCmd("")
	snippetSource = true
	defer func() { snippetSource = false }()

	require.NoError(t, runSnippet(cmd, []string{"variables"}))
	assert.Contains(t, out.String(), "func Run()")
}

func TestRootCommand_LoadsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guess:\n  min: 20\n  max: 10\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--config", path, "hello"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid guess range")
	assert.NotContains(t, out.String(), "Error:", "main prints the error, cobra should not")

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n"), 0644))
	out.Reset()
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Hello, world!\n", out.String())
}

func TestLogBoot_RecordsNameAndVersion(t *testing.T) {
	newTestCmd("")
	cfg.Version = "9.9.9"

	core, logs := observer.New(zapcore.DebugLevel)
	logging.Initialize(zap.New(core), cfg.Logging)
	t.Cleanup(func() { logging.Initialize(nil, config.LoggingConfig{}) })

	logBoot(helloCmd)

	entries := logs.FilterMessage("Starting").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "playground", fields["name"])
	assert.Equal(t, "9.9.9", fields["version"])
	assert.Equal(t, "hello", fields["command"])
}
