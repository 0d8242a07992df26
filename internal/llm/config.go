// Package llm centralizes model configuration and the provider client
// abstraction used by the analysis features.
package llm

// ModelTier represents the capability level requested for a task.
type ModelTier string

const (
	// TierLite covers cheap tasks: keyword and benefit extraction.
	TierLite ModelTier = "lite"
	// TierStandard covers moderate reasoning: text and job analysis.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers rewriting: applying suggestions to a resume.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Config maps tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model for tier, falling back to standard then lite
// when the tier has no entry.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c with model bound to tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
