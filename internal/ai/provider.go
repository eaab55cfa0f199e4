// Package ai provides a unified interface for the external generation APIs
// the service depends on: text LLMs (Anthropic, OpenAI) and image models
// (Replicate). Each text provider implements the TextProvider interface,
// and the Registry selects the active one by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// TextRequest is a single text-generation call. Model may be empty, in which
// case the provider's configured default model is used.
type TextRequest struct {
	Model       string
	MaxTokens   int
	Temperature float64
	System      string
	Prompt      string
}

// TextProvider defines the interface that all text providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type TextProvider interface {
	// GenerateText sends a prompt to the LLM and returns the generated text.
	GenerateText(ctx context.Context, req TextRequest) (string, error)

	// Name returns the provider identifier (e.g., "anthropic", "openai").
	Name() string
}

// ImageRequest is a single image-generation call.
type ImageRequest struct {
	Model             string
	Prompt            string
	Width             int
	Height            int
	NegativePrompt    string
	NumOutputs        int
	NumInferenceSteps int
}

// ImageProvider generates raster images from prompts and returns the URLs
// of the generated outputs.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) ([]string, error)
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry manages available text providers and selects the active one.
// It supports runtime switching by changing the active provider name.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]TextProvider
	active    string
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]TextProvider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "anthropic":
			r.providers[name] = newAnthropic(cfg)
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		}
	}

	return r
}

// GenerateText calls the active provider's GenerateText method.
func (r *Registry) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.GenerateText(ctx, req)
}

// Active returns the currently active provider.
func (r *Registry) Active() (TextProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows injecting
// custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p TextProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
