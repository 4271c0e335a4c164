package main

import (
	"fmt"
	"os"

	"playground/internal/config"
	"playground/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "Introductory Go exercises",
	Long: `playground bundles three small teaching programs:

  hello      print "Hello, world!"
  guess      guess a secret number between 1 and 100
  variables  reassignment, constants and shadowing

Use "playground lessons" to list them and "playground explain <lesson>"
to read the notes that go with each one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.Initialize(logger, cfg.Logging)
		logBoot(cmd)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// logBoot records which build and config a command runs with.
func logBoot(cmd *cobra.Command) {
	logging.Get(logging.CategoryBoot).Debug("Starting",
		zap.String("name", cfg.Name),
		zap.String("version", cfg.Version),
		zap.String("command", cmd.Name()))
	logging.Get(logging.CategoryConfig).Debug("Config loaded",
		zap.String("path", configPath),
		zap.Uint32("guess_min", cfg.Guess.Min),
		zap.Uint32("guess_max", cfg.Guess.Max),
		zap.String("theme", cfg.UX.Theme))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Config file")

	// Guess flags
	guessCmd.Flags().Uint32Var(&guessMin, "min", 0, "Smallest possible secret (default from config: 1)")
	guessCmd.Flags().Uint32Var(&guessMax, "max", 0, "Largest possible secret (default from config: 100)")
	guessCmd.Flags().Uint64Var(&guessSeed, "seed", 0, "Seed for the secret number (0 = random)")
	guessCmd.Flags().BoolVar(&guessTUI, "tui", false, "Play in an interactive terminal UI")

	// Variables flags
	variablesCmd.Flags().BoolVar(&variablesAll, "all", false, "Run the full walkthrough, not just shadowing")

	// Lesson flags
	explainCmd.Flags().BoolVar(&explainPlain, "plain", false, "Print raw markdown")
	snippetCmd.Flags().BoolVar(&snippetSource, "source", false, "Print the snippet source instead of running it")

	// Add commands to root
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(variablesCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(snippetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
