package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/adapters/driven/journal/sqlite"
	"github.com/hellolumen/lumenctl/internal/adapters/driving/callback"
	"github.com/hellolumen/lumenctl/internal/adapters/driving/navigator"
	"github.com/hellolumen/lumenctl/internal/core/services"
	"github.com/hellolumen/lumenctl/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the callback listener and exchange watcher",
	Long: `Run the OAuth callback server and the code exchange watcher.

Provider redirects arriving on the listen address are matched against the
configured callback URLs; fresh authorization codes are handed to the
backend for token exchange. The state file is watched for external edits.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if stateStore == nil {
		return errors.New("state store not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal, err := sqlite.NewJournal(settings.DataDir)
	if err != nil {
		return err
	}
	defer journal.Close()

	nav := navigator.New()
	exchanger := services.NewExchanger(stateStore, backendGateway, nav, userNotifier, journal)
	server := callback.NewServer(settings.ListenAddr, settings.PublicOrigin, nav)

	errCh := make(chan error, 3)
	go func() { errCh <- stateStore.Watch(ctx) }()
	go func() { errCh <- server.Run(ctx) }()
	go func() { errCh <- exchanger.Run(ctx) }()

	logger.Info("watching for callbacks on %s as %s", settings.ListenAddr, settings.PublicOrigin)

	err = <-errCh
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
