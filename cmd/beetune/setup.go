package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure an AI provider",
	Long:  "Stores credentials for an AI provider in ~/.beetune and makes it the active provider.",
	RunE:  runSetup,
}

var (
	setupProvider string
	setupAPIKey   string
	setupEndpoint string
	setupModel    string
)

func init() {
	setupCmd.Flags().StringVarP(&setupProvider, "provider", "p", string(config.ProviderGemini), "Provider: openai, anthropic, gemini, ollama, or custom")
	setupCmd.Flags().StringVarP(&setupAPIKey, "api-key", "k", "", "API key for the provider (required)")
	setupCmd.Flags().StringVar(&setupEndpoint, "endpoint", "", "API endpoint override")
	setupCmd.Flags().StringVarP(&setupModel, "model", "m", "", "Default model name")

	if err := setupCmd.MarkFlagRequired("api-key"); err != nil {
		panic(fmt.Sprintf("failed to mark api-key flag as required: %v", err))
	}

	rootCmd.AddCommand(setupCmd)
}

var knownProviders = map[string]bool{
	string(config.ProviderOpenAI):    true,
	string(config.ProviderAnthropic): true,
	string(config.ProviderGemini):    true,
	string(config.ProviderOllama):    true,
	string(config.ProviderCustom):    true,
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !knownProviders[setupProvider] {
		return fmt.Errorf("unknown provider %q; expected openai, anthropic, gemini, ollama, or custom", setupProvider)
	}

	store, err := config.NewStore("")
	if err != nil {
		return err
	}

	if err := store.SetProvider(config.AIProvider(setupProvider), setupAPIKey, setupEndpoint, setupModel); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Configured provider %q (config: %s)\n", setupProvider, store.Path())
	return nil
}
