package cmd

import (
	"context"
	"fmt"
	"strings"

	"atvremote/backend"
	"atvremote/internal/bridge"
	"atvremote/internal/config"
	"atvremote/internal/models"

	"github.com/spf13/cobra"
)

var (
	connectCmd = &cobra.Command{
		Use:   "connect <address>",
		Short: "connect to a device and remember its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *backend.App) error {
				ok, err := a.Remote.Connect(ctx, args[0])
				if !ok {
					if err != nil {
						return fmt.Errorf("%s %s: %w", a.Translator.T("connection_error"), args[0], err)
					}
					return fmt.Errorf("%s %s", a.Translator.T("connection_error"), args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Translator.T("connection_success"), a.Remote.Current())
				return err
			})
		},
	}

	disconnectCmd = &cobra.Command{
		Use:   "disconnect <address>",
		Short: "disconnect a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *backend.App) error {
				a.Remote.Attach(args[0])
				addr, err := a.Remote.Disconnect(ctx)
				if err != nil {
					return err
				}
				if addr != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Translator.T("disconnected"), addr)
				}
				return nil
			})
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "show the device state and the adb bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *backend.App) error {
				status, err := a.Remote.PollStatus(ctx)
				if err != nil {
					return err
				}
				key := "status_disconnected"
				if status == models.StatusConnected {
					key = "status_connected"
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.Translator.T(key))

				if a.Bridge != nil {
					server := a.Translator.T("bridge_server_stopped")
					if running, err := bridge.ServerRunning(ctx); err == nil && running {
						server = a.Translator.T("bridge_server_running")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", a.Translator.T("bridge"), a.Bridge.Path(), server)
				}
				return nil
			})
		},
	}

	keyCmd = &cobra.Command{
		Use:       "key <action>",
		Short:     "press a remote key",
		Long:      "Press a remote key. Actions: " + strings.Join(actionNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: actionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := models.ParseAction(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *backend.App) error {
				return a.Remote.Press(ctx, action)
			})
		},
	}

	textCmd = &cobra.Command{
		Use:   "text <text>...",
		Short: "type text on the device",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *backend.App) error {
				_, err := a.Remote.SendText(ctx, strings.Join(args, " "))
				return err
			})
		},
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "list previously connected addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(_ context.Context, a *backend.App) error {
				addrs := a.Remote.SavedAddresses()
				if len(addrs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), a.Translator.T("no_previous_connections"))
					return nil
				}
				for _, addr := range addrs {
					fmt.Fprintln(cmd.OutOrStdout(), addr)
				}
				return nil
			})
		},
	}

	envCmd = &cobra.Command{
		Use:   "env",
		Short: "describe the supported environment variables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.Usage())
		},
	}
)

func actionNames() []string {
	actions := models.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}

// withApp loads the documents and runs fn against the device controller.
// Preferences are left untouched.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *backend.App) error) error {
	cfg := resolveConfig()
	if !cfg.Debug {
		cfg.Logger.Level = "warn"
	}
	logger := setupLogger(cfg)
	defer logger.Sync()

	a, err := startApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), a)
}

func init() {
	rootCmd.AddCommand(connectCmd, disconnectCmd, statusCmd, keyCmd, textCmd, historyCmd, envCmd)
}
