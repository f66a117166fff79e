package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/money"
	"github.com/budgetwave-dev/budgetwave/internal/render"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

func newSalaryCommand(a *app) *cobra.Command {
	salaryCmd := &cobra.Command{
		Use:   "salary",
		Short: "Manage the monthly salary",
	}
	salaryCmd.AddCommand(&cobra.Command{
		Use:   "set <value>",
		Short: "Set the monthly salary, e.g. 5.000,00",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				if err := budget.SetSalary(s, money.Parse(args[0])); err != nil {
					return "", err
				}
				return "Salário salvo.", nil
			})
		},
	})
	return salaryCmd
}

func newProfileCommand(a *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the spending profile weights",
	}

	profileCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show weights and the goal each yields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				rows, sum := report.Profile(s)
				fmt.Fprint(cmd.OutOrStdout(), render.New(s.Theme).Profile(rows, sum))
				return nil
			})
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "set <name> <weight>",
		Short: "Set the weight of a category name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				weight := money.Parse(args[1])
				if err := budget.SetWeight(s, args[0], weight); err != nil {
					return "", err
				}
				return fmt.Sprintf("Peso de %s: %s%%", args[0], weight), nil
			})
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "normalize",
		Short: "Rescale weights to add up to 90%",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				normalized, err := budget.NormalizeProfile(s.Profile)
				if err != nil {
					return "", err
				}
				s.Profile = normalized
				return "Perfil normalizado para 90%.", nil
			})
		},
	})

	return profileCmd
}

func newThemeCommand(a *app) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the display theme",
	}
	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				if budget.ToggleTheme(s) == model.ThemeDark {
					return "Tema: escuro", nil
				}
				return "Tema: claro", nil
			})
		},
	})
	return themeCmd
}
