package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// AIProvider identifies a configured AI provider.
type AIProvider string

const (
	ProviderOpenAI    AIProvider = "openai"
	ProviderAnthropic AIProvider = "anthropic"
	ProviderGemini    AIProvider = "gemini"
	ProviderOllama    AIProvider = "ollama"
	ProviderCustom    AIProvider = "custom"
)

// defaultEndpoints are filled in when a provider is configured without an
// explicit endpoint.
var defaultEndpoints = map[AIProvider]string{
	ProviderOpenAI:    "https://api.openai.com/v1",
	ProviderAnthropic: "https://api.anthropic.com",
}

// ProviderSettings is the stored configuration for one provider.
type ProviderSettings struct {
	APIKey   string `json:"api_key"`
	Endpoint string `json:"endpoint,omitempty"`
	Model    string `json:"model,omitempty"`
}

// storeFile is the on-disk layout of the credential store.
type storeFile struct {
	ActiveProvider string                      `json:"active_provider,omitempty"`
	Providers      map[string]ProviderSettings `json:"providers,omitempty"`
}

// storeSchema validates the credential store file on load so a hand-edited
// file fails with a clear message instead of odd downstream behavior.
const storeSchema = `{
  "type": "object",
  "properties": {
    "active_provider": {"type": "string"},
    "providers": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "api_key": {"type": "string"},
          "endpoint": {"type": "string"},
          "model": {"type": "string"}
        },
        "required": ["api_key"],
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// Store persists provider credentials under the user's config directory.
// The file is written with 0600 permissions since it holds API keys.
type Store struct {
	dir  string
	path string
	data storeFile
}

// NewStore opens the credential store in dir. An empty dir means the
// default location, ~/.beetune.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, &Error{Message: "failed to resolve home directory", Cause: err}
		}
		dir = filepath.Join(home, ".beetune")
	}

	s := &Store{
		dir:  dir,
		path: filepath.Join(dir, "config.json"),
		data: storeFile{Providers: map[string]ProviderSettings{}},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &Error{Message: "failed to read config file", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(storeSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return &Error{Message: "failed to parse config file", Cause: err}
	}
	if !result.Valid() {
		return &Error{Message: fmt.Sprintf("invalid config file: %s", result.Errors()[0])}
	}

	var data storeFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return &Error{Message: "failed to parse config file", Cause: err}
	}
	if data.Providers == nil {
		data.Providers = map[string]ProviderSettings{}
	}
	s.data = data
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return &Error{Message: "failed to create config directory", Cause: err}
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return &Error{Message: "failed to encode config", Cause: err}
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return &Error{Message: "failed to write config file", Cause: err}
	}
	return nil
}

// SetProvider stores credentials for provider and makes it active. Known
// providers get a default endpoint when none is given.
func (s *Store) SetProvider(provider AIProvider, apiKey, endpoint, model string) error {
	if apiKey == "" {
		return &Error{Message: "API key cannot be empty"}
	}
	if endpoint == "" {
		endpoint = defaultEndpoints[provider]
	}
	s.data.Providers[string(provider)] = ProviderSettings{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Model:    model,
	}
	s.data.ActiveProvider = string(provider)
	return s.save()
}

// ActiveProvider returns the active provider name, or "" when none is set.
func (s *Store) ActiveProvider() string {
	return s.data.ActiveProvider
}

// ProviderConfig returns the settings for provider. An empty provider means
// the active one.
func (s *Store) ProviderConfig(provider string) (ProviderSettings, error) {
	if provider == "" {
		provider = s.data.ActiveProvider
	}
	if provider == "" {
		return ProviderSettings{}, &Error{Message: "no AI provider configured, run 'beetune setup' first"}
	}
	settings, ok := s.data.Providers[provider]
	if !ok {
		return ProviderSettings{}, &Error{Message: fmt.Sprintf("provider %q is not configured", provider)}
	}
	return settings, nil
}

// APIKey returns the API key for provider ("" means active).
func (s *Store) APIKey(provider string) (string, error) {
	settings, err := s.ProviderConfig(provider)
	if err != nil {
		return "", err
	}
	if settings.APIKey == "" {
		return "", &Error{Message: fmt.Sprintf("no API key configured for provider %q", provider)}
	}
	return settings.APIKey, nil
}

// Endpoint returns the endpoint for provider ("" means active).
func (s *Store) Endpoint(provider string) (string, error) {
	settings, err := s.ProviderConfig(provider)
	if err != nil {
		return "", err
	}
	return settings.Endpoint, nil
}

// Model returns the default model for provider ("" means active).
func (s *Store) Model(provider string) (string, error) {
	settings, err := s.ProviderConfig(provider)
	if err != nil {
		return "", err
	}
	return settings.Model, nil
}

// ListProviders returns the configured provider names in sorted order.
func (s *Store) ListProviders() []string {
	names := make([]string, 0, len(s.data.Providers))
	for name := range s.data.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveProvider deletes a provider's credentials. Removing the active
// provider clears the active selection.
func (s *Store) RemoveProvider(provider string) error {
	if _, ok := s.data.Providers[provider]; !ok {
		return nil
	}
	delete(s.data.Providers, provider)
	if s.data.ActiveProvider == provider {
		s.data.ActiveProvider = ""
	}
	return s.save()
}

// IsConfigured reports whether any provider is active.
func (s *Store) IsConfigured() bool {
	return s.data.ActiveProvider != ""
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return s.path
}
