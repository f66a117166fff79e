package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/render"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show this month's income, expenses and balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				fmt.Fprint(cmd.OutOrStdout(), render.New(s.Theme).Summary(s, a.now()))
				return nil
			})
		},
	}
}

func newGoalsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show spending against each category goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				now := a.now()
				r := render.New(s.Theme)
				out := cmd.OutOrStdout()
				fmt.Fprint(out, r.Goals(report.GoalRows(s, now)))
				fmt.Fprintln(out)
				fmt.Fprint(out, r.ExpensePie(report.ExpensePie(s, now)))
				return nil
			})
		},
	}
}
