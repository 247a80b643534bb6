package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Simulation session commands",
	}
	cmd.AddCommand(newSessionsListCmd(app))
	cmd.AddCommand(newSessionsShowCmd(app))
	cmd.AddCommand(newSessionsDeleteCmd(app))
	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx()
			defer cancel()

			sessions, err := app.api.Sessions.List(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sessions)
		},
	}
}

func newSessionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx, cancel := app.ctx()
			defer cancel()

			sess, err := app.api.Sessions.Get(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sess)
		},
	}
}

func newSessionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx, cancel := app.ctx()
			defer cancel()

			if err := app.api.Sessions.Delete(ctx, id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": id})
		},
	}
}

func parseID(s string) (int, error) {
	return strconv.Atoi(s)
}
