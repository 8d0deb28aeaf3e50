package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the display configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configWidgetCmd = &cobra.Command{
	Use:   "widget <region> <widget>",
	Short: "Assign a widget to a screen region",
	Long: `Assign a widget to a screen region.

Regions: left, center, right
Widgets: none, music, weather, brokerage, clock`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigWidget,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Set the display theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigTheme,
}

var configOrientationCmd = &cobra.Command{
	Use:   "orientation <horizontal|vertical>",
	Short: "Set the display orientation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigOrientation,
}

var configAccentCmd = &cobra.Command{
	Use:   "accent <hex>",
	Short: "Set the accent colour (e.g. #ff8800)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigAccent,
}

var configSpeedCmd = &cobra.Command{
	Use:   "speed <n>",
	Short: fmt.Sprintf("Set text rendering speed (%d-%d characters per second)", domain.MinCharactersPerSecond, domain.MaxCharactersPerSecond),
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSpeed,
}

var (
	oauthClientID     string
	oauthClientSecret string
	oauthAuthorizeURL string
	oauthCallbackURL  string
	oauthGetTokenURL  string
)

var configOAuthCmd = &cobra.Command{
	Use:   "oauth <integration>",
	Short: "Register an OAuth client for an integration",
	Long: `Register or update the OAuth client for an integration.

The client secret is prompted for when --client-secret is not given.
Unset flags clear the corresponding field.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigOAuth,
}

func init() {
	configOAuthCmd.Flags().StringVar(&oauthClientID, "client-id", "", "OAuth client ID")
	configOAuthCmd.Flags().StringVar(&oauthClientSecret, "client-secret", "", "OAuth client secret (prompted if omitted)")
	configOAuthCmd.Flags().StringVar(&oauthAuthorizeURL, "authorize-url", "", "provider consent page URL")
	configOAuthCmd.Flags().StringVar(&oauthCallbackURL, "callback-url", "", "redirect URL registered with the provider")
	configOAuthCmd.Flags().StringVar(&oauthGetTokenURL, "token-url", "", "backend token exchange URL")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configWidgetCmd)
	configCmd.AddCommand(configThemeCmd)
	configCmd.AddCommand(configOrientationCmd)
	configCmd.AddCommand(configAccentCmd)
	configCmd.AddCommand(configSpeedCmd)
	configCmd.AddCommand(configOAuthCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	state := consoleService.State()
	display := state.Display

	cmd.Println("[Display]")
	for _, region := range domain.AllRegions() {
		cmd.Printf("  %-6s %s\n", region.String()+":", display.Widget(region))
	}
	cmd.Printf("  Theme: %s\n", display.Theme)
	cmd.Printf("  Orientation: %s\n", display.Orientation)
	cmd.Printf("  Accent: %s\n", display.AccentColor)
	cmd.Printf("  Speed: %d chars/s\n", display.CharactersPerSecond)
	cmd.Println()

	for _, name := range state.Integrations.Names() {
		cfg := state.Integrations[name]
		cmd.Printf("[%s]\n", name)
		cmd.Printf("  Client ID: %s\n", orUnset(cfg.ClientID))
		cmd.Printf("  Client Secret: %s\n", orUnset(maskSecret(cfg.ClientSecret)))
		cmd.Printf("  Authorize URL: %s\n", orUnset(cfg.AuthorizeURL))
		cmd.Printf("  Callback URL: %s\n", orUnset(cfg.CallbackURL))
		cmd.Printf("  Token URL: %s\n", orUnset(cfg.GetTokenURL))
		status := "ready"
		if !cfg.HasCredentials() {
			status = "incomplete"
		}
		cmd.Printf("  Status: %s\n", status)
		cmd.Println()
	}

	return nil
}

func runConfigWidget(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	region := domain.Region(args[0])
	widget := domain.Widget(args[1])
	if err := consoleService.SetWidget(region, widget); err != nil {
		return err
	}
	cmd.Printf("%s region set to %s\n", region, widget)
	return nil
}

func runConfigTheme(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	theme := domain.Theme(args[0])
	if err := consoleService.SetTheme(theme); err != nil {
		return err
	}
	cmd.Printf("Theme set to %s\n", theme)
	return nil
}

func runConfigOrientation(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	orientation := domain.Orientation(args[0])
	if err := consoleService.SetOrientation(orientation); err != nil {
		return err
	}
	cmd.Printf("Orientation set to %s\n", orientation)
	return nil
}

func runConfigAccent(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	if err := consoleService.SetAccentColor(args[0]); err != nil {
		return err
	}
	cmd.Printf("Accent colour set to %s\n", args[0])
	return nil
}

func runConfigSpeed(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	cps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("speed %q: %w", args[0], domain.ErrInvalidInput)
	}
	if err := consoleService.SetCharactersPerSecond(cps); err != nil {
		return err
	}
	cmd.Printf("Speed set to %d chars/s\n", domain.ClampCharactersPerSecond(cps))
	return nil
}

func runConfigOAuth(cmd *cobra.Command, args []string) error {
	if consoleService == nil {
		return errors.New("console service not configured")
	}

	name := args[0]
	secret := oauthClientSecret
	if secret == "" && oauthClientID != "" {
		cmd.Print("Enter client secret: ")
		secret = readPassword()
		cmd.Println()
	}

	err := consoleService.SetIntegration(name, domain.OAuthClientConfig{
		ClientID:     oauthClientID,
		ClientSecret: secret,
		AuthorizeURL: oauthAuthorizeURL,
		CallbackURL:  oauthCallbackURL,
		GetTokenURL:  oauthGetTokenURL,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Integration %s updated\n", name)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
