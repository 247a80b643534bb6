package cli

import (
	"fmt"

	"realworlded-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"api_url":   app.cfg.APIBaseURL,
				"timeout":   app.cfg.Timeout.String(),
				"log_level": app.cfg.LogLevel,
				"log_file":  app.cfg.LogFile,
				"state_dir": app.cfg.StateDir,
				"theme":     app.cfg.Theme,
				"logged_in": app.state.Token() != "",
			})
		},
	}
	cmd.AddCommand(newConfigThemeCmd(app))
	return cmd
}

func newConfigThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme <dark|light>",
		Short: "Set the persisted TUI theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := args[0]
			if theme != store.ThemeDark && theme != store.ThemeLight {
				return writeErr(cmd, fmt.Errorf("theme must be %q or %q", store.ThemeDark, store.ThemeLight))
			}
			app.state.SetTheme(theme)
			return writeOut(cmd, app, map[string]any{"theme": theme})
		},
	}
}
