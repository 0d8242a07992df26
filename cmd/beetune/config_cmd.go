package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage provider configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured providers",
	RunE:  runConfigList,
}

var configShowCmd = &cobra.Command{
	Use:   "show [provider]",
	Short: "Show settings for a provider (defaults to the active one)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove <provider>",
	Short: "Remove a provider's credentials",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigRemove,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configRemoveCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(_ *cobra.Command, _ []string) error {
	store, err := config.NewStore("")
	if err != nil {
		return err
	}

	providers := store.ListProviders()
	if len(providers) == 0 {
		fmt.Fprintln(os.Stdout, "No providers configured. Run 'beetune setup' to add one.")
		return nil
	}

	active := store.ActiveProvider()
	for _, name := range providers {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, name)
	}
	return nil
}

func runConfigShow(_ *cobra.Command, args []string) error {
	store, err := config.NewStore("")
	if err != nil {
		return err
	}

	provider := ""
	if len(args) == 1 {
		provider = args[0]
	}
	settings, err := store.ProviderConfig(provider)
	if err != nil {
		return err
	}
	if provider == "" {
		provider = store.ActiveProvider()
	}

	fmt.Fprintf(os.Stdout, "Provider:  %s\n", provider)
	fmt.Fprintf(os.Stdout, "API key:   %s\n", maskKey(settings.APIKey))
	fmt.Fprintf(os.Stdout, "Endpoint:  %s\n", settings.Endpoint)
	fmt.Fprintf(os.Stdout, "Model:     %s\n", settings.Model)
	return nil
}

func runConfigRemove(_ *cobra.Command, args []string) error {
	store, err := config.NewStore("")
	if err != nil {
		return err
	}

	if err := store.RemoveProvider(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed provider %q\n", args[0])
	return nil
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
