package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/config"
	"github.com/budgetwave-dev/budgetwave/internal/store"
)

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a BudgetWave directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := a.runInit(absDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BudgetWave inicializado em %s\n", absDir)
			return nil
		},
	}
}

func (a *app) runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	// Write budgetwave.yaml with the state next to it.
	cfg := config.Default()
	cfg.Storage.Backend = a.cfg.Storage.Backend
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	st, err := store.Open(cfg.Storage.Backend, dir, a.logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(store.Default()); err != nil {
		return fmt.Errorf("writing initial state: %w", err)
	}
	a.logger.Debug("Initialized directory", "dir", dir, "backend", cfg.Storage.Backend)
	return nil
}
