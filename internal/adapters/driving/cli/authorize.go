package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/adapters/driving/callback"
)

var authorizeOpen bool

var authorizeCmd = &cobra.Command{
	Use:   "authorize <integration>",
	Short: "Print the provider consent URL for an integration",
	Long: `Print the OAuth consent URL for an integration.

Open the URL in a browser and grant access; the provider redirects back to
the callback URL, where 'lumenctl serve' picks up the authorization code.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthorize,
}

func init() {
	authorizeCmd.Flags().BoolVar(&authorizeOpen, "open", false, "open the URL in the default browser")
	rootCmd.AddCommand(authorizeCmd)
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	rawURL, err := consoleService.AuthorizeURL(args[0])
	if err != nil {
		return err
	}

	cmd.Println(rawURL)

	if authorizeOpen {
		if err := callback.OpenBrowser(rawURL); err != nil {
			return err
		}
	}
	return nil
}
