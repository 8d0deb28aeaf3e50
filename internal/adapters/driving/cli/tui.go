package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive configuration editor",
	Long: `Launch the interactive terminal editor for the display configuration.

Controls:
  ↑/k, ↓/j - Select field
  ←/h, →/l - Change value
  Tab      - Switch between display and integration views
  Enter    - Edit field
  p        - Push configuration to the backend
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}
	return tui.Run(consoleService)
}
