// Package cli provides the lumenctl command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/adapters/driven/gateway/httpapi"
	"github.com/hellolumen/lumenctl/internal/adapters/driven/notify/term"
	"github.com/hellolumen/lumenctl/internal/adapters/driven/state/file"
	"github.com/hellolumen/lumenctl/internal/config"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/core/ports/driving"
	"github.com/hellolumen/lumenctl/internal/core/services"
	"github.com/hellolumen/lumenctl/internal/logger"
)

var version = "0.1.0"

var (
	flagVerbose bool
	flagDataDir string
	flagBaseURL string
)

// Package services wired by setup. Tests inject fakes before executing a
// command, which makes setup a no-op.
var (
	settings       config.Settings
	stateStore     *file.Store
	backendGateway driven.Gateway
	userNotifier   driven.Notifier
	consoleService driving.ConsoleService
)

var rootCmd = &cobra.Command{
	Use:   "lumenctl",
	Short: "Configuration console for the Lumen display",
	Long: `lumenctl configures a Lumen smart display: assign widgets to screen
regions, tune appearance, register OAuth integrations, and push the
configuration to the display backend.

Run 'lumenctl serve' to listen for OAuth provider redirects; observed
authorization codes are exchanged with the backend automatically.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "state directory (default ~/.lumenctl)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "display backend base URL")
}

// setup loads settings and wires the default services. Flags override the
// environment.
func setup(_ *cobra.Command, _ []string) error {
	if consoleService != nil {
		return nil
	}

	var err error
	settings, err = config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		settings.DataDir = flagDataDir
	}
	if flagBaseURL != "" {
		settings.BaseURL = flagBaseURL
	}
	logger.SetVerbose(flagVerbose || settings.Verbose)

	stateStore, err = file.NewStore(settings.DataDir)
	if err != nil {
		return err
	}

	backendGateway = httpapi.NewGateway(settings.BaseURL)
	userNotifier = term.NewNotifier()
	consoleService = services.NewConsole(stateStore, backendGateway, userNotifier)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
