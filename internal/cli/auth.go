package cli

import (
	"errors"

	"realworlded-cli/internal/api"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.ctx()
			defer cancel()

			token, err := app.api.Auth.Login(ctx, email, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Persist before the profile fetch: Me authenticates with the
			// token the client reads back from the state file.
			app.state.SetToken(token)

			user, err := app.api.Auth.Me(ctx)
			if err != nil {
				app.state.SetToken("")
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.state.SetToken("")
			return writeOut(cmd, app, map[string]any{"logged_out": true})
		},
	}
}

func newSignupCmd(app *App) *cobra.Command {
	var req api.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(req.Password) < 6 {
				return writeErr(cmd, errors.New("password must be at least 6 characters"))
			}

			ctx, cancel := app.ctx()
			defer cancel()

			// Signup does not log in; follow with `realworlded login`.
			user, err := app.api.Auth.Signup(ctx, req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, user)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Username, "username", "", "Username")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (optional)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (min 6 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
