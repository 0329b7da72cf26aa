// Package main provides the CLI entrypoint for akshara.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/akshara/internal/config"
	"github.com/verte-zerg/akshara/internal/generator"
	"github.com/verte-zerg/akshara/internal/lessons"
	"github.com/verte-zerg/akshara/internal/model"
	"github.com/verte-zerg/akshara/internal/prefs"
	"github.com/verte-zerg/akshara/internal/quotes"
	"github.com/verte-zerg/akshara/internal/session"
	"github.com/verte-zerg/akshara/internal/stats"
	"github.com/verte-zerg/akshara/internal/store"
	"github.com/verte-zerg/akshara/internal/tui"
	"github.com/verte-zerg/akshara/internal/wordlist"
)

const (
	defaultCompose  = "auto"
	defaultKeyboard = "native"
	defaultDriver   = "sqlite"
)

var (
	practiceLesson   int
	practiceMode     string
	practiceValue    int
	practiceCompose  string
	practiceKeyboard string

	storeDriver    string
	storePath      string
	storeRedisAddr string
	redisDB        int
	redisPassword  string

	lessonsFile  string
	wordlistPath string
	debugLog     bool

	quotesLength string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "akshara",
		Short:         "Devanagari Inscript typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceLesson, "lesson", model.DefaultLessonID, "lesson id")
	rootCmd.Flags().StringVar(&practiceMode, "mode", string(model.DefaultMode), "test mode: time, words, quote or zen")
	rootCmd.Flags().IntVar(&practiceValue, "value", 0, "1-3600 seconds (time), 1-1000 words (words) or 1-3 quote length (quote)")
	rootCmd.Flags().StringVar(&practiceCompose, "compose", defaultCompose, "compose mode: auto or direct")
	rootCmd.Flags().StringVar(&practiceKeyboard, "keyboard", defaultKeyboard, "keyboard: native or qwerty")

	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", defaultDriver, "preference store: sqlite, redis or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().StringVar(&storeRedisAddr, "redis-addr", "", "redis address for the redis store")
	rootCmd.PersistentFlags().StringVar(&lessonsFile, "lessons-file", "", "YAML file with extra lessons")
	rootCmd.PersistentFlags().StringVar(&wordlistPath, "wordlist", "", "word list turned into a custom lesson")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write debug diagnostics to the log file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLessonsCmd())
	rootCmd.AddCommand(newQuotesCmd())
	rootCmd.AddCommand(newPrefsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("akshara needs an interactive terminal")
	}
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "compose", &practiceCompose, fileCfg.Practice.Compose)
	applyStringConfig(cmd, "keyboard", &practiceKeyboard, fileCfg.Practice.Keyboard)

	composeMode, err := session.ParseComposeMode(practiceCompose)
	if err != nil {
		return fmt.Errorf("invalid --compose value: %w", err)
	}
	keyboard, err := tui.ParseKeyboard(practiceKeyboard)
	if err != nil {
		return fmt.Errorf("invalid --keyboard value: %w", err)
	}

	closeLog, err := setupLogging(debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := buildCatalog(lessonsFile, wordlistPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	prefStore, closeStore, err := openPreferences()
	if err != nil {
		return err
	}
	defer closeStore()

	cfg, err := resolveConfig(ctx, cmd, fileCfg.Practice, prefStore)
	if err != nil {
		return err
	}

	engine := session.New(catalog, quotes.Default(), generator.New(), prefStore)
	engine.Configure(ctx, cfg)
	log.Info().Int("lesson", engine.Config().LessonID).Str("mode", string(cfg.Mode)).Int("value", cfg.Value).Msg("starting practice")

	ui := tui.NewModel(ctx, engine, catalog, tui.Options{Compose: composeMode, Keyboard: keyboard, ShowKeyboard: true})
	program := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	res, resCfg, lesson, ok := ui.LastResult()
	if !ok {
		return nil
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), resCfg, lesson, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveConfig picks the first session: explicit flags win over stored
// preferences, which win over the config file and built-in defaults.
func resolveConfig(ctx context.Context, cmd *cobra.Command, file config.PracticeConfig, prefStore *prefs.Store) (model.Config, error) {
	cfg := model.DefaultConfig()
	if file.Lesson != nil {
		cfg.LessonID = *file.Lesson
	}
	if file.Mode != nil {
		cfg.Mode = model.Mode(strings.ToLower(strings.TrimSpace(*file.Mode)))
		cfg.Value = 0
	}
	if file.Value != nil {
		cfg.Value = *file.Value
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	cfg = prefStore.LoadOr(ctx, cfg)

	if cmd.Flags().Changed("lesson") {
		cfg.LessonID = practiceLesson
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = model.Mode(strings.ToLower(strings.TrimSpace(practiceMode)))
		cfg.Value = 0
	}
	if cmd.Flags().Changed("value") {
		cfg.Value = practiceValue
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg.Normalize(), nil
}

// validateConfig rejects values Normalize would silently replace. A zero
// value means the mode default.
func validateConfig(cfg model.Config) error {
	if !cfg.Mode.Valid() {
		return fmt.Errorf("--mode must be one of time, words, quote, zen")
	}
	if cfg.LessonID < 1 {
		return fmt.Errorf("--lesson must be >= 1")
	}
	switch cfg.Mode {
	case model.ModeTime:
		if cfg.Value < 0 || cfg.Value > model.MaxTimeValue {
			return fmt.Errorf("--value must be between 1 and %d seconds for time mode", model.MaxTimeValue)
		}
	case model.ModeWords:
		if cfg.Value < 0 || cfg.Value > model.MaxWordsValue {
			return fmt.Errorf("--value must be between 1 and %d words for words mode", model.MaxWordsValue)
		}
	case model.ModeQuote:
		if cfg.Value < 0 || cfg.Value > 3 {
			return fmt.Errorf("--value must be 1 (short), 2 (medium) or 3 (long) for quote mode")
		}
	}
	return nil
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "store", &storeDriver, fileCfg.Store.Driver)
	applyStringConfig(cmd, "db", &storePath, fileCfg.Store.Path)
	applyStringConfig(cmd, "redis-addr", &storeRedisAddr, fileCfg.Store.RedisAddr)
	applyStringConfig(cmd, "lessons-file", &lessonsFile, fileCfg.Lessons.File)
	applyStringConfig(cmd, "wordlist", &wordlistPath, fileCfg.Lessons.Wordlist)
	redisDB = 0
	redisPassword = ""
	if fileCfg.Store.RedisDB != nil {
		redisDB = *fileCfg.Store.RedisDB
	}
	if fileCfg.Store.RedisPassword != nil {
		redisPassword = *fileCfg.Store.RedisPassword
	}
	return fileCfg, nil
}

func setupLogging(debug bool) (func(), error) {
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}, nil
}

func buildCatalog(lessonsPath, wordsPath string) (*lessons.Catalog, error) {
	if lessonsPath == "" {
		lessonsPath = config.DefaultLessonsPath()
	}
	extra, err := lessons.LoadFile(lessonsPath)
	if err != nil {
		return nil, err
	}
	list := lessons.Merge(lessons.Builtin(), extra)
	if wordsPath != "" {
		words, err := wordlist.LoadWords(wordsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		kept := wordlist.Filter(words, wordlist.Typeable)
		if len(kept) == 0 {
			return nil, fmt.Errorf("word list %s has no Inscript-typeable Devanagari words", wordsPath)
		}
		log.Debug().Int("loaded", len(words)).Int("kept", len(kept)).Str("path", wordsPath).Msg("custom word list")
		list = append(list, lessons.FromWords(list, kept))
	}
	catalog, err := lessons.New(list)
	if err != nil {
		return nil, fmt.Errorf("failed to build lesson catalog: %w", err)
	}
	return catalog, nil
}

// openPreferences builds the configured preference backend. The returned
// func releases it and any database it owns.
func openPreferences() (*prefs.Store, func(), error) {
	backendType, err := prefs.ParseBackendType(storeDriver)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --store value: %w", err)
	}

	var (
		opts []prefs.Option
		db   *store.Store
	)
	switch backendType {
	case prefs.BackendSQLite:
		path := storePath
		if path == "" {
			path = config.DefaultDBPath()
		}
		db, err = store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db: %w", err)
		}
		opts = append(opts, prefs.WithSQLiteStore(db))
	case prefs.BackendRedis:
		if storeRedisAddr == "" {
			return nil, nil, fmt.Errorf("--redis-addr is required for the redis store")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     storeRedisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		opts = append(opts, prefs.WithRedisClient(client))
	}

	backend, err := prefs.NewBackend(backendType, opts...)
	if err != nil {
		if db != nil {
			if cerr := db.Close(); cerr != nil {
				// Best-effort close on setup failure.
				_ = cerr
			}
		}
		return nil, nil, fmt.Errorf("failed to create preference store: %w", err)
	}
	prefStore := prefs.New(backend)
	closeFn := func() {
		if cerr := prefStore.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close preference store")
		}
		if db != nil {
			if cerr := db.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("failed to close db")
			}
		}
	}
	return prefStore, closeFn, nil
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

// writeConfigTemplate creates the commented config file unless it exists.
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

func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List practice lessons",
		Args:  cobra.NoArgs,
		RunE:  runLessonsCmd,
	}
}

func runLessonsCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	catalog, err := buildCatalog(lessonsFile, wordlistPath)
	if err != nil {
		return err
	}
	return printLessons(cmd, catalog)
}

func printLessons(cmd *cobra.Command, catalog *lessons.Catalog) error {
	rows := make([][]string, 0, catalog.Len())
	for _, group := range catalog.Stages() {
		for _, l := range group.Lessons {
			pool := len(l.Keys)
			switch {
			case len(l.Words) > 0:
				pool = len(l.Words)
			case len(l.Combos) > 0:
				pool = len(l.Combos)
			}
			rows = append(rows, []string{fmt.Sprintf("%d", l.ID), group.Stage, l.LabelEn, l.LabelHi, fmt.Sprintf("%d", pool)})
		}
	}
	lines := stats.FormatTable([]string{"Lesson", "Stage", "Label", "नाम", "Pool"}, rows, map[int]bool{0: true, 4: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newQuotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "List quotes",
		Args:  cobra.NoArgs,
		RunE:  runQuotesCmd,
	}
	cmd.Flags().StringVar(&quotesLength, "length", "", "only show short, medium or long quotes")
	return cmd
}

func runQuotesCmd(cmd *cobra.Command, _ []string) error {
	bank := quotes.Default()
	list := bank.All()
	if quotesLength != "" {
		bucket, ok := quotes.ParseBucket(quotesLength)
		if !ok {
			return fmt.Errorf("--length must be short, medium or long")
		}
		list = bank.InBucket(bucket)
	}
	rows := make([][]string, 0, len(list))
	for _, q := range list {
		rows = append(rows, []string{string(q.Length), fmt.Sprintf("%d", len(quotes.Words(q))), q.Text, q.Source})
	}
	lines := stats.FormatTable([]string{"Length", "Words", "Quote", "Source"}, rows, map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show stored preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear stored preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsResetCmd,
	})
	return cmd
}

func runPrefsCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	prefStore, closeStore, err := openPreferences()
	if err != nil {
		return err
	}
	defer closeStore()
	return printPrefs(cmd, prefStore)
}

func printPrefs(cmd *cobra.Command, prefStore *prefs.Store) error {
	out := cmd.OutOrStdout()
	cfg, ok := prefStore.Load(cmd.Context())
	if !ok {
		if _, err := fmt.Fprintln(out, "no stored preferences"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	rows := [][]string{
		{"store", storeDriver},
		{"lesson", fmt.Sprintf("%d", cfg.LessonID)},
		{"mode", string(cfg.Mode)},
		{"value", fmt.Sprintf("%d", cfg.Value)},
	}
	for _, line := range stats.FormatTable(nil, rows, nil) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runPrefsResetCmd(cmd *cobra.Command, _ []string) error {
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	prefStore, closeStore, err := openPreferences()
	if err != nil {
		return err
	}
	defer closeStore()
	if err := prefStore.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "preferences cleared"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# akshara configuration
# Uncomment a value to enable it. CLI flags override config values;
# settings changed in the app are remembered and win over this file.

[practice]
# lesson = %d             # Lesson id (see: akshara lessons)
# mode = %q          # time, words, quote or zen
# value = %d              # Seconds, word count, or quote length 1-3
# compose = %q       # auto holds conjuncts until complete, direct commits each key
# keyboard = %q     # native (OS Inscript layout) or qwerty (mapped here)

[store]
# driver = %q       # sqlite, redis or memory
# path = %q
# redis-addr = "localhost:6379"
# redis-db = 0
# redis-password = ""

[lessons]
# file = %q
# wordlist = ""           # One Devanagari word per line
`,
		model.DefaultLessonID,
		string(model.DefaultMode),
		model.DefaultTimeValue,
		defaultCompose,
		defaultKeyboard,
		defaultDriver,
		config.DefaultDBPath(),
		config.DefaultLessonsPath(),
	)
}
