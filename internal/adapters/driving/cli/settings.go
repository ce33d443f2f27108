package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where the marks database lives and how teacher
secrets are checked.

Use subcommands to change a specific setting.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDatabaseCmd = &cobra.Command{
	Use:   "database <path>",
	Short: "Set the database file path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDatabase,
}

var settingsAuthCmd = &cobra.Command{
	Use:   "auth [scheme]",
	Short: "Set the secret verification scheme",
	Long: `Set how teacher secrets are compared at login.

Available schemes:
  plaintext - Compare against the built-in table as written
  bcrypt    - Hash the built-in table at startup and compare hashes

Run without an argument to choose interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsAuth,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDatabaseCmd)
	settingsCmd.AddCommand(settingsAuthCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Current Settings")
	fmt.Fprintln(cmd.OutOrStdout(), "================")
	fmt.Fprintln(cmd.OutOrStdout())

	fmt.Fprintln(cmd.OutOrStdout(), "[Database]")
	fmt.Fprintf(cmd.OutOrStdout(), "  Path: %s\n", settings.Database.Path)
	if dbPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  Override (--db): %s\n", dbPath)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	fmt.Fprintln(cmd.OutOrStdout(), "[Auth]")
	fmt.Fprintf(cmd.OutOrStdout(), "  Scheme: %s\n", settings.Auth.Scheme.Description())
	fmt.Fprintln(cmd.OutOrStdout())

	fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsDatabase(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetDatabasePath(args[0]); err != nil {
		return fmt.Errorf("failed to set database path: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database path set to %s\n", args[0])
	return nil
}

func runSettingsAuth(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var scheme domain.SecretScheme
	if len(args) == 1 {
		scheme = domain.SecretScheme(args[0])
	} else {
		current := domain.DefaultAppSettings().Auth.Scheme
		if settings, err := settingsService.Get(); err == nil {
			current = settings.Auth.Scheme
		}

		schemes := domain.AllSecretSchemes()
		defaultChoice := 1
		fmt.Fprintln(cmd.OutOrStdout(), "Select secret scheme:")
		for i, s := range schemes {
			marker := ""
			if s == current {
				marker = " (current)"
				defaultChoice = i + 1
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s%s\n", i+1, s.Description(), marker)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Choice [%d]: ", defaultChoice)

		reader := bufio.NewReader(cmd.InOrStdin())
		scheme = schemes[parseChoice(readLine(reader), len(schemes), defaultChoice)-1]
	}

	if err := settingsService.SetAuthScheme(scheme); err != nil {
		return fmt.Errorf("failed to set auth scheme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Auth scheme set to %s\n", scheme)
	return nil
}
