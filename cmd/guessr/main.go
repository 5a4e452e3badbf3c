// Package main provides the CLI entrypoint for guessr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/guessr/internal/config"
	"github.com/verte-zerg/guessr/internal/game"
	"github.com/verte-zerg/guessr/internal/generator"
	"github.com/verte-zerg/guessr/internal/logging"
	"github.com/verte-zerg/guessr/internal/model"
	"github.com/verte-zerg/guessr/internal/plain"
	"github.com/verte-zerg/guessr/internal/play"
	"github.com/verte-zerg/guessr/internal/stats"
	"github.com/verte-zerg/guessr/internal/store"
	"github.com/verte-zerg/guessr/internal/theme"
	"github.com/verte-zerg/guessr/internal/tui"
	"github.com/verte-zerg/guessr/internal/wordlist"
)

const (
	defaultLang        = "en"
	defaultLength      = 5
	defaultMaxGuesses  = 6
	defaultHistorySize = 10
)

var (
	playLength     int
	playMaxGuesses int
	playLang       string
	playWordList   string
	playAnswers    string
	playTheme      string
	playPractice   bool
	playDaily      bool
	playSeed       int64
	playGames      int
	playPlain      bool
	playHistory    int
	playLogFile    string
	playLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "guessr",
		Short:         "Terminal word guessing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playLength, "length", defaultLength, "letters per word")
	rootCmd.Flags().IntVar(&playMaxGuesses, "max-guesses", defaultMaxGuesses, "guesses allowed per game")
	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "language code (default: en)")
	rootCmd.Flags().StringVar(&playWordList, "wordlist", "", "file of accepted guesses, one per line")
	rootCmd.Flags().StringVar(&playAnswers, "answers", "", "file of target words, one per line")
	rootCmd.Flags().StringVar(&playTheme, "theme", theme.DefaultName, "tile colour theme")
	rootCmd.Flags().BoolVar(&playPractice, "practice", false, "show hints after each guess")
	rootCmd.Flags().BoolVar(&playDaily, "daily", false, "play the word of the day")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for reproducible target selection")
	rootCmd.Flags().IntVar(&playGames, "games", 0, "number of games to play (0: until quit)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "line mode without the full-screen UI")
	rootCmd.Flags().IntVar(&playHistory, "history", defaultHistorySize, "recent games shown in the stats panel")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", "", "write JSON logs to this file")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newDiffCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	applyIntConfig(cmd, "length", &playLength, fileCfg.Game.Length, envCfg.Length)
	applyIntConfig(cmd, "max-guesses", &playMaxGuesses, fileCfg.Game.MaxGuesses, envCfg.MaxGuesses)
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang, envCfg.Lang)
	applyStringConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList, envCfg.WordList)
	applyStringConfig(cmd, "answers", &playAnswers, fileCfg.Game.Answers, envCfg.Answers)
	applyStringConfig(cmd, "theme", &playTheme, fileCfg.Theme.Name, envCfg.Theme)
	applyBoolConfig(cmd, "practice", &playPractice, fileCfg.Game.Practice, envCfg.Practice)
	applyIntConfig(cmd, "history", &playHistory, fileCfg.Game.History, envCfg.History)
	applyStringConfig(cmd, "log-file", &playLogFile, nil, envCfg.LogFile)
	applyStringConfig(cmd, "log-level", &playLogLevel, nil, envCfg.LogLevel)

	cfg := model.Config{
		Game:        model.GameConfig{WordLength: playLength, MaxGuesses: playMaxGuesses},
		Lang:        playLang,
		WordList:    playWordList,
		Answers:     playAnswers,
		Theme:       playTheme,
		Practice:    playPractice,
		Daily:       playDaily,
		Seed:        playSeed,
		Games:       playGames,
		Plain:       playPlain || !term.IsTerminal(int(os.Stdin.Fd())),
		LogFile:     playLogFile,
		LogLevel:    playLogLevel,
		HistorySize: playHistory,
	}
	if err := validateConfig(cfg, cmd.Flags().Changed("seed")); err != nil {
		return err
	}

	th, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return err
	}
	th = th.WithOverride(theme.Override{
		Correct: fileCfg.Theme.Correct,
		Present: fileCfg.Theme.Present,
		Absent:  fileCfg.Theme.Absent,
	})

	logger, closeLog, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Hold:  !cfg.Plain,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	logger.Debug().Int("candidates", len(dict.Candidates())).Int("accepted", dict.Size()).Msg("dictionary loaded")

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return fmt.Errorf("failed to open session journal: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close session journal")
		}
	}()

	gen := generator.New()
	if cmd.Flags().Changed("seed") {
		gen = generator.NewSeeded(cfg.Seed)
	}
	runner, err := play.NewRunner(cfg, dict, gen, st, stats.NewAggregator(), logger)
	if err != nil {
		return err
	}

	if cfg.Plain {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		opts := plain.Options{Theme: th, Practice: cfg.Practice, Width: width}
		return plain.Run(cmd.Context(), runner, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	}

	m, err := tui.NewModel(runner, th, cfg.Practice, logger)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

// loadDictionary reads custom lists when configured, then the downloaded
// list for the language, and falls back to the embedded lists.
func loadDictionary(cfg model.Config) (*wordlist.Dictionary, error) {
	var answers, allowed []string
	switch {
	case cfg.WordList != "" || cfg.Answers != "":
		var err error
		if cfg.WordList != "" {
			if allowed, err = wordlist.LoadWords(cfg.WordList); err != nil {
				return nil, fmt.Errorf("failed to load word list: %w", err)
			}
		}
		answers = allowed
		if cfg.Answers != "" {
			if answers, err = wordlist.LoadWords(cfg.Answers); err != nil {
				return nil, fmt.Errorf("failed to load answers: %w", err)
			}
		}
	case fileExists(config.DefaultWordListPath(cfg.Lang)):
		words, err := wordlist.LoadWords(config.DefaultWordListPath(cfg.Lang))
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		answers = words
	default:
		var err error
		answers, allowed, err = wordlist.Embedded(cfg.Lang)
		if err != nil {
			return nil, wordListLoadError(cfg.Lang, config.DefaultWordListPath(cfg.Lang), err)
		}
	}

	dict, err := wordlist.NewDictionary(cfg.Game.WordLength, wordlist.Letters, answers, allowed)
	if err != nil {
		return nil, err
	}
	if len(dict.Candidates()) == 0 {
		return nil, fmt.Errorf("no %d-letter words in the %q word list: %w", cfg.Game.WordLength, cfg.Lang, generator.ErrEmptyPool)
	}
	return dict, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
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
	if err := writeConfigTemplate(path); err != nil {
		return err
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

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := availableLangs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// availableLangs merges the embedded languages with the *.txt lists in dir.
func availableLangs(dir string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, lang := range wordlist.EmbeddedLangs() {
		seen[lang] = struct{}{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		seen[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List colour themes",
		Args:  cobra.NoArgs,
		RunE:  runThemesCmd,
	}
}

func runThemesCmd(cmd *cobra.Command, _ []string) error {
	sample := game.Feedback{game.Correct, game.Present, game.Absent, game.Absent, game.Correct}
	for _, name := range theme.Names() {
		th, err := theme.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, th.Row("theme", sample)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, file, env *string) {
	if cmd.Flags().Changed(name) {
		return
	}
	if file != nil {
		*target = *file
	}
	if env != nil {
		*target = *env
	}
}

func applyIntConfig(cmd *cobra.Command, name string, target, file, env *int) {
	if cmd.Flags().Changed(name) {
		return
	}
	if file != nil {
		*target = *file
	}
	if env != nil {
		*target = *env
	}
}

func applyBoolConfig(cmd *cobra.Command, name string, target, file, env *bool) {
	if cmd.Flags().Changed(name) {
		return
	}
	if file != nil {
		*target = *file
	}
	if env != nil {
		*target = *env
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# guessr configuration
# Uncomment a value to enable it. GUESSR_* variables override the file,
# CLI flags override both.

[game]
# length = %d              # Letters per word
# max-guesses = %d         # Guesses allowed per game
# lang = %q              # Language code
# wordlist = ""           # File of accepted guesses
# answers = ""            # File of target words
# practice = false        # Show hints after each guess
# history = %d            # Recent games shown in the stats panel

[theme]
# name = %q         # One of: %s
# correct = "#538D4E"     # Tile background overrides
# present = "#B59F3B"
# absent = "#3A3A3C"
`,
		defaultLength,
		defaultMaxGuesses,
		defaultLang,
		defaultHistorySize,
		theme.DefaultName,
		strings.Join(theme.Names(), ", "),
	)
}

func validateConfig(cfg model.Config, seedSet bool) error {
	if err := cfg.Game.Validate(); err != nil {
		return err
	}
	if cfg.Games < 0 {
		return fmt.Errorf("--games must be >= 0")
	}
	if cfg.HistorySize < 0 {
		return fmt.Errorf("--history must be >= 0")
	}
	if cfg.Daily && seedSet {
		return fmt.Errorf("--daily and --seed cannot be combined")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: guessr langs",
		"Or pass --wordlist <file>",
	}
	return errors.New(strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
