package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// replicateProvider implements the ImageProvider interface using the
// Replicate predictions API. The Prefer: wait header makes the call
// synchronous for models that finish within the hold window.
type replicateProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewReplicate creates a Replicate image provider.
func NewReplicate(cfg ProviderConfig) ImageProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.replicate.com"
	}
	return &replicateProvider{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *replicateProvider) Name() string { return "replicate" }

// GenerateImage runs a prediction against the configured model and returns
// the output image URLs.
func (p *replicateProvider) GenerateImage(ctx context.Context, req ImageRequest) ([]string, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	input := replicateInput{
		Prompt:            req.Prompt,
		Width:             req.Width,
		Height:            req.Height,
		NegativePrompt:    req.NegativePrompt,
		NumOutputs:        req.NumOutputs,
		NumInferenceSteps: req.NumInferenceSteps,
	}
	if input.NumOutputs <= 0 {
		input.NumOutputs = 1
	}

	payload, err := json.Marshal(replicateRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("replicate marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s/predictions", p.config.BaseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("replicate request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	httpReq.Header.Set("Prefer", "wait")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("replicate http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("replicate read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("replicate API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result replicateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("replicate unmarshal: %w", err)
	}

	if result.Status == "failed" || result.Status == "canceled" {
		return nil, fmt.Errorf("replicate prediction %s: %s", result.Status, result.Error)
	}

	urls := result.Output.URLs()
	if len(urls) == 0 {
		return nil, fmt.Errorf("replicate: no output images returned")
	}
	return urls, nil
}

// --- Replicate predictions API types ---

type replicateInput struct {
	Prompt            string `json:"prompt"`
	Width             int    `json:"width,omitempty"`
	Height            int    `json:"height,omitempty"`
	NegativePrompt    string `json:"negative_prompt,omitempty"`
	NumOutputs        int    `json:"num_outputs,omitempty"`
	NumInferenceSteps int    `json:"num_inference_steps,omitempty"`
}

type replicateRequest struct {
	Input replicateInput `json:"input"`
}

// replicateOutput tolerates both output shapes the API uses: a single URL
// string or an array of URL strings.
type replicateOutput struct {
	single string
	many   []string
}

func (o *replicateOutput) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &o.many)
	}
	return json.Unmarshal(data, &o.single)
}

func (o replicateOutput) URLs() []string {
	if o.single != "" {
		return []string{o.single}
	}
	var urls []string
	for _, u := range o.many {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

type replicateResponse struct {
	Status string          `json:"status"`
	Output replicateOutput `json:"output"`
	Error  string          `json:"error"`
}
