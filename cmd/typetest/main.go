// Package main provides the CLI entrypoint for typetest.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typetest/internal/config"
	"github.com/verte-zerg/typetest/internal/generator"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/report"
	"github.com/verte-zerg/typetest/internal/source"
	"github.com/verte-zerg/typetest/internal/tui"
)

const (
	defaultCount    = 10
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?"
	defaultTheme    = "dark"
)

var (
	wordsCount    int
	wordsEndpoint string
	wordsList     string
	wordsCaps     float64
	wordsPunct    float64
	wordsPunctSet string

	quoteEndpoint string

	lightTheme bool
	debugPath  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetest",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, "")
		},
	}

	rootCmd.PersistentFlags().BoolVar(&lightTheme, "light", false, "use the light theme")
	rootCmd.PersistentFlags().StringVar(&debugPath, "debug", "", "write debug log to file")

	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Practice a list of single words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, model.ModeWords)
		},
	}
	cmd.Flags().IntVar(&wordsCount, "count", defaultCount, "number of words (1-100)")
	cmd.Flags().StringVar(&wordsEndpoint, "endpoint", source.DefaultWordsEndpoint, "random word API endpoint")
	cmd.Flags().StringVar(&wordsList, "wordlist", "", "local word list file used instead of the API")
	cmd.Flags().Float64Var(&wordsCaps, "caps", defaultCaps, "probability of capitalized first letter for local words (0-1)")
	cmd.Flags().Float64Var(&wordsPunct, "punct", defaultPunct, "punctuation probability per local word (0-1)")
	cmd.Flags().StringVar(&wordsPunctSet, "punct-set", defaultPunctSet, "punctuation set for local words")
	return cmd
}

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Practice a single quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, model.ModeQuote)
		},
	}
	cmd.Flags().StringVar(&quoteEndpoint, "endpoint", "", "quote API endpoint")
	return cmd
}

func runApp(cmd *cobra.Command, mode model.Mode) error {
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("typetest needs an interactive terminal")
	}

	closeLog, err := setupLogging(debugPath)
	if err != nil {
		return err
	}
	defer closeLog()

	app := tui.NewApp(cfg, buildDeps(cfg), mode)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if summary, ok := app.LastSummary(); ok {
		if err := report.Render(cmd.OutOrStdout(), summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// resolveConfig merges defaults, the config file, .env, the environment and
// flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, mode model.Mode) (model.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		logErrln(err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyEnv(&fileCfg)

	// Both subcommands define --endpoint, so only the owning command's flags
	// may shadow each section.
	wordsFlags, quoteFlags := cmd, cmd
	if mode != model.ModeWords {
		wordsFlags = nil
	}
	if mode != model.ModeQuote {
		quoteFlags = nil
	}

	applyIntConfig(wordsFlags, "count", &wordsCount, fileCfg.Words.Count)
	applyStringConfig(wordsFlags, "endpoint", &wordsEndpoint, fileCfg.Words.Endpoint)
	applyStringConfig(wordsFlags, "wordlist", &wordsList, fileCfg.Words.WordList)
	applyFloatConfig(wordsFlags, "caps", &wordsCaps, fileCfg.Words.CapsPct)
	applyFloatConfig(wordsFlags, "punct", &wordsPunct, fileCfg.Words.PunctPct)
	applyStringConfig(wordsFlags, "punct-set", &wordsPunctSet, fileCfg.Words.PunctSet)
	applyStringConfig(quoteFlags, "endpoint", &quoteEndpoint, fileCfg.Quote.Endpoint)

	light := lightTheme
	if !flagChanged(cmd, "light") && fileCfg.UI.Theme != nil {
		parsed, err := parseTheme(*fileCfg.UI.Theme)
		if err != nil {
			return model.Config{}, err
		}
		light = parsed
	}

	apiKey := ""
	if fileCfg.Quote.APIKey != nil {
		apiKey = strings.TrimSpace(*fileCfg.Quote.APIKey)
	}

	return model.Config{
		Words: model.WordsConfig{
			Count:    wordsCount,
			Endpoint: strings.TrimSpace(wordsEndpoint),
			WordList: strings.TrimSpace(wordsList),
			CapsPct:  wordsCaps,
			PunctPct: wordsPunct,
			PunctSet: wordsPunctSet,
		},
		Quote: model.QuoteConfig{
			Endpoint: strings.TrimSpace(quoteEndpoint),
			APIKey:   apiKey,
		},
		UI: model.UIConfig{Light: light},
	}, nil
}

func parseTheme(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "dark":
		return false, nil
	case "light":
		return true, nil
	default:
		return false, fmt.Errorf("theme must be \"dark\" or \"light\", got %q", value)
	}
}

func buildDeps(cfg model.Config) tui.Deps {
	var words source.WordSource
	if cfg.Words.WordList != "" {
		opts := generator.Options{
			CapsPct:  cfg.Words.CapsPct,
			PunctPct: cfg.Words.PunctPct,
			PunctSet: []rune(cfg.Words.PunctSet),
		}
		words = source.NewWordListSource(cfg.Words.WordList, generator.New(), opts)
	} else {
		words = source.NewWordClient(cfg.Words.Endpoint, nil)
	}
	return tui.Deps{
		Words:  words,
		Quotes: source.NewQuoteClient(cfg.Quote.Endpoint, cfg.Quote.APIKey, nil),
	}
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty since the TUI owns the terminal.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "typetest")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd != nil && cmd.Flags().Changed(name)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetest configuration
# Uncomment a value to enable it. CLI flags override config values.
# TYPETEST_QUOTE_ENDPOINT and TYPETEST_QUOTE_API_KEY (also read from .env)
# override the [quote] section.

[words]
# count = %d              # Words per session (1-100)
# endpoint = %q
# wordlist = ""           # Local word list, one word per line; replaces the API
# caps = %.2f             # Probability of capitalized first letter (0-1), word list only
# punct = %.2f            # Punctuation probability per word (0-1), word list only
# punct-set = %q      # Punctuation set, word list only

[quote]
# endpoint = ""           # Quote API endpoint
# api-key = ""            # Sent as X-Api-Key

[ui]
# theme = %q          # "dark" or "light"
`,
		defaultCount,
		source.DefaultWordsEndpoint,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultTheme,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words.Count < source.MinWords || cfg.Words.Count > source.MaxWords {
		return fmt.Errorf("--count must be between %d and %d", source.MinWords, source.MaxWords)
	}
	if cfg.Words.Endpoint == "" && cfg.Words.WordList == "" {
		return fmt.Errorf("--endpoint must not be empty")
	}
	if cfg.Words.CapsPct < 0 || cfg.Words.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.Words.PunctPct < 0 || cfg.Words.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.Words.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if strings.ContainsAny(cfg.Words.PunctSet, " \t\n") {
		return fmt.Errorf("--punct-set must not contain whitespace")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
