package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/render"
)

func newCatCommand(a *app) *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "cat",
		Short: "Manage categories",
	}
	catCmd.AddCommand(newCatAddCommand(a))
	catCmd.AddCommand(newCatRmCommand(a))
	catCmd.AddCommand(newCatListCommand(a))
	return catCmd
}

func newCatAddCommand(a *app) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				c, err := budget.AddCategory(s, args[0], color)
				if err != nil {
					return "", err
				}
				a.logger.Debug("Added category", "id", c.ID, "name", c.Name)
				return "Categoria adicionada.", nil
			})
		},
	}

	cmd.Flags().StringVar(&color, "color", budget.DefaultCategoryColor, "color as #rrggbb")

	return cmd
}

func newCatRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category and its profile weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				c, ok := budget.FindCategory(*s, args[0])
				if !ok {
					return "", fmt.Errorf("category %s not found", args[0])
				}
				budget.DeleteCategory(s, c.ID)
				a.logger.Debug("Removed category", "id", c.ID, "name", c.Name)
				return "Categoria removida.", nil
			})
		},
	}
}

func newCatListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				fmt.Fprint(cmd.OutOrStdout(), render.New(s.Theme).Categories(s.Categories))
				return nil
			})
		},
	}
}
