package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newEvaluateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <session-id>",
		Short: "Request an evaluation report for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			// Evaluation runs the grading model server-side; allow it more
			// time than a plain read.
			ctx, cancel := context.WithTimeout(context.Background(), 3*app.cfg.Timeout)
			defer cancel()

			result, err := app.api.Evaluation.Evaluate(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, result)
		},
	}
}
