package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/adapters/driven/journal/sqlite"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
)

var historyLimit int

// attemptJournal is injected by tests; otherwise the SQLite journal is
// opened for the duration of the command.
var attemptJournal driven.AttemptJournal

var historyCmd = &cobra.Command{
	Use:   "history [integration]",
	Short: "Show recent authorization code exchange attempts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum attempts to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	journal := attemptJournal
	if journal == nil {
		opened, err := sqlite.NewJournal(settings.DataDir)
		if err != nil {
			return err
		}
		defer opened.Close()
		journal = opened
	}

	integration := ""
	if len(args) == 1 {
		integration = args[0]
	}

	attempts, err := journal.History(cmd.Context(), integration, historyLimit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		cmd.Println("No exchange attempts recorded.")
		return nil
	}

	for _, attempt := range attempts {
		outcome := "failed"
		switch {
		case attempt.Succeeded:
			outcome = "ok"
		case attempt.CompletedAt.IsZero():
			outcome = "pending"
		}
		cmd.Printf("%s  %-10s %-8s %s\n",
			attempt.StartedAt.Format(time.RFC3339),
			attempt.Integration,
			outcome,
			maskSecret(attempt.Code),
		)
	}
	return nil
}
