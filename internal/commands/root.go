package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/buildinfo"
	"github.com/budgetwave-dev/budgetwave/internal/config"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/store"
)

// app carries what every subcommand shares: the resolved configuration, the
// logger and the clock.
type app struct {
	configPath string
	dataDir    string
	backend    string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger

	now    func() time.Time
	getenv func(string) string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{now: time.Now, getenv: os.Getenv})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetwave",
		Short:   "Monthly budget: income, expenses and spending goals",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "config file")
	flags.StringVar(&a.dataDir, "data-dir", "", "directory holding the state document")
	flags.StringVar(&a.backend, "backend", "", "storage backend (file, bolt)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newTxCommand(a))
	rootCmd.AddCommand(newCatCommand(a))
	rootCmd.AddCommand(newSalaryCommand(a))
	rootCmd.AddCommand(newProfileCommand(a))
	rootCmd.AddCommand(newGoalsCommand(a))
	rootCmd.AddCommand(newThemeCommand(a))

	return rootCmd
}

// setup resolves configuration with flags over environment over file, then
// installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir := filepath.Dir(a.configPath)
	if err := config.LoadDotEnv(configDir); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.getenv)

	if a.backend != "" {
		cfg.Storage.Backend = a.backend
	}
	if a.dataDir != "" {
		cfg.Storage.DataDir = a.dataDir
	} else if !filepath.IsAbs(cfg.Storage.DataDir) {
		cfg.Storage.DataDir = filepath.Join(configDir, cfg.Storage.DataDir)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Logging)
	slog.SetDefault(a.logger)
	return nil
}

func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.Storage.Backend, a.cfg.Storage.DataDir, a.logger)
}

// view loads the state read-only and hands it to fn.
func (a *app) view(fn func(s model.AppState) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st.Load())
}

// update loads the state, applies fn and saves the result. When fn fails
// nothing is written. The returned message is printed on success.
func (a *app) update(cmd *cobra.Command, fn func(s *model.AppState) (string, error)) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	s := st.Load()
	msg, err := fn(&s)
	if err != nil {
		return err
	}
	if err := st.Save(s); err != nil {
		return err
	}
	if msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
