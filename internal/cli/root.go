// Package cli wires configuration, the API client and the persisted state
// into cobra commands. Running the binary without a subcommand starts the
// interactive TUI; subcommands are scriptable and print JSON.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"realworlded-cli/internal/api"
	"realworlded-cli/internal/config"
	"realworlded-cli/internal/logger"
	"realworlded-cli/internal/store"
	"realworlded-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool

	cfg    config.Config
	state  *store.StateFile
	client *api.Client
	api    *api.API
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "realworlded",
		Short:        "RealWorldEd terminal client",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  realworlded

  # Scriptable commands
  realworlded login --email you@example.com --password secret
  realworlded sessions list
  realworlded evaluate 42
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}

		state := store.OpenStateFile(cfg.StateDir)
		client := api.NewClient(cfg.APIBaseURL, cfg.Timeout)
		client.TokenSource = state.Token
		client.OnUnauthorized = func() {
			// A rejected token is useless; drop the persisted copy so the
			// next start doesn't retry it.
			state.SetToken("")
		}

		app.cfg = cfg
		app.state = state
		app.client = client
		app.api = api.New(client)
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newSessionsCmd(app))
	cmd.AddCommand(newReportsCmd(app))
	cmd.AddCommand(newEvaluateCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st := tui.Stores{
		Auth:     store.NewAuthStore(app.state),
		Sessions: store.NewSessionStore(),
		Chat:     store.NewChatStore(),
		Theme:    store.NewThemeStore(app.state),
	}
	return tui.Run(app.cfg, app.api, st)
}

func (app *App) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), app.cfg.Timeout)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(map[string]any{"data": v})
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
