package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/beetune/internal/config"
	"github.com/jonathan/beetune/internal/llm"
)

// newLLMClient builds a provider client from the credential store, with the
// GEMINI_API_KEY environment variable as a fallback for unconfigured
// installs. Explicit overrides win over both.
func newLLMClient(ctx context.Context, apiKeyOverride, modelOverride string) (llm.Client, error) {
	apiKey := apiKeyOverride
	model := modelOverride

	if apiKey == "" {
		store, err := config.NewStore("")
		if err != nil {
			return nil, err
		}
		if store.IsConfigured() {
			provider := store.ActiveProvider()
			if provider != string(config.ProviderGemini) {
				return nil, fmt.Errorf("provider %q is configured but only gemini has a native client; rerun 'beetune setup --provider gemini'", provider)
			}
			apiKey, err = store.APIKey(provider)
			if err != nil {
				return nil, err
			}
			if model == "" {
				if stored, err := store.Model(provider); err == nil {
					model = stored
				}
			}
		}
	}

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no AI provider configured, run 'beetune setup' or set GEMINI_API_KEY")
	}

	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.
			WithModel(llm.TierLite, model).
			WithModel(llm.TierStandard, model).
			WithModel(llm.TierAdvanced, model)
	}

	return llm.NewClient(ctx, cfg, apiKey)
}
