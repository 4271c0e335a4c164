package main

import (
	"context"
	"fmt"
	"io"

	"playground/cmd/playground/ui"
	"playground/internal/lessons"
	"playground/internal/logging"
	"playground/internal/sandbox"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	explainPlain  bool
	snippetSource bool
)

// lessonsCmd lists the teaching programs
var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lessons",
	Args:  cobra.NoArgs,
	RunE:  listLessons,
}

// explainCmd renders a lesson's notes
var explainCmd = &cobra.Command{
	Use:   "explain [lesson]",
	Short: "Read the notes for a lesson",
	Long: `Renders the markdown notes that go with a lesson.

Examples:
  playground explain variables
  playground explain guess --plain`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: lessons.Names(),
	RunE:      runExplain,
}

// snippetCmd runs a lesson snippet in the interpreter
var snippetCmd = &cobra.Command{
	Use:   "snippet [lesson]",
	Short: "Run a lesson's Go snippet in an embedded interpreter",
	Long: `Interprets the lesson's Go source and prints what it outputs.
Lessons that read from standard input have no snippet.

Examples:
  playground snippet hello
  playground snippet variables --source`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: lessons.Names(),
	RunE:      runSnippet,
}

func listLessons(cmd *cobra.Command, args []string) error {
	all, err := lessons.Catalog()
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UX.Theme))
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Title.Render("Lessons"))
	fmt.Fprintln(out, styles.RenderDivider(40))
	for _, l := range all {
		line := fmt.Sprintf("%-10s %s", l.Name, styles.Bold.Render(l.Title))
		if l.Runnable() {
			line += " " + styles.Badge.Render("snippet")
		}
		fmt.Fprintln(out, line)
		fmt.Fprintln(out, "           "+styles.Muted.Render(l.Summary))
	}
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	l, err := lessons.Lookup(args[0])
	if err != nil {
		return err
	}

	theme := ui.ThemeByName(cfg.UX.Theme)
	rendered, err := lessons.Render(l.Notes, lessons.RenderOptions{
		Style:    theme.GlamourStyle(),
		WordWrap: cfg.UX.WordWrap,
		Plain:    explainPlain,
	})
	if err != nil {
		return err
	}

	logging.Get(logging.CategoryLesson).Debug("Rendered notes",
		zap.String("lesson", l.Name),
		zap.Bool("plain", explainPlain))

	_, err = io.WriteString(cmd.OutOrStdout(), rendered)
	return err
}

func runSnippet(cmd *cobra.Command, args []string) error {
	l, err := lessons.Lookup(args[0])
	if err != nil {
		return err
	}
	if !l.Runnable() {
		return fmt.Errorf("lesson %q reads from standard input; run it with \"playground %s\"", l.Name, l.Name)
	}

	if snippetSource {
		_, err := io.WriteString(cmd.OutOrStdout(), l.Snippet)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := sandbox.NewRunner(cfg.GetSandboxTimeout(), logging.Get(logging.CategorySandbox))
	if err := runner.Run(ctx, l.Snippet, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("snippet %s failed: %w", l.Name, err)
	}
	return nil
}
