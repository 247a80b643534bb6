package cli

import (
	"github.com/spf13/cobra"
)

func newReportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Evaluation report commands",
	}
	cmd.AddCommand(newReportsListCmd(app))
	cmd.AddCommand(newReportsShowCmd(app))
	return cmd
}

func newReportsListCmd(app *App) *cobra.Command {
	var forSession int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your evaluation reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx()
			defer cancel()

			if forSession != 0 {
				report, err := app.api.Evaluation.SessionReport(ctx, forSession)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, report)
			}

			reports, err := app.api.Evaluation.Reports(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, reports)
		},
	}

	cmd.Flags().IntVar(&forSession, "session", 0, "Show the report for one session instead")
	return cmd
}

func newReportsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <report-id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx, cancel := app.ctx()
			defer cancel()

			report, err := app.api.Evaluation.Report(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, report)
		},
	}
}
