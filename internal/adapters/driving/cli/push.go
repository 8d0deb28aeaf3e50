package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push configuration and credentials to the display backend",
}

var pushConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Upload the current display configuration",
	RunE:  runPushConfig,
}

var credentialsEmail string

var pushCredentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Submit brokerage login credentials",
	Long: `Submit brokerage login credentials to the display backend.

The password is always prompted for and never stored locally.`,
	RunE: runPushCredentials,
}

func init() {
	pushCredentialsCmd.Flags().StringVar(&credentialsEmail, "email", "", "brokerage account email")

	pushCmd.AddCommand(pushConfigCmd)
	pushCmd.AddCommand(pushCredentialsCmd)
	rootCmd.AddCommand(pushCmd)
}

func runPushConfig(cmd *cobra.Command, _ []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	if !consoleService.PushDisplayConfig(cmd.Context()) {
		return errors.New("upload failed")
	}
	return nil
}

func runPushCredentials(cmd *cobra.Command, _ []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	email := credentialsEmail
	if email == "" {
		cmd.Print("Email: ")
		reader := bufioReader()
		email = readLine(reader)
	}

	cmd.Print("Password: ")
	password := readPassword()
	cmd.Println()

	ok, err := consoleService.PushBrokerageCredentials(cmd.Context(), domain.BrokerageCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("submission failed")
	}
	return nil
}
