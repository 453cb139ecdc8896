package learn

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
	"google.golang.org/genai"
)

// Provider is the text-in/text-out model capability used by the service.
type Provider interface {
	Generate(ctx context.Context, instruction string) (string, error)
}

type geminiProvider struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	temperature *float32
}

func NewGeminiProvider(ctx context.Context, cfg config.ModelConfig) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGeminiProvider(client, cfg), nil
}

func newGeminiProvider(client *genai.Client, cfg config.ModelConfig) *geminiProvider {
	return &geminiProvider{
		client:      client,
		model:       cfg.Name,
		timeout:     cfg.Timeout,
		temperature: cfg.Temperature,
	}
}

func (p *geminiProvider) Generate(ctx context.Context, instruction string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var genConfig *genai.GenerateContentConfig
	if p.temperature != nil {
		genConfig = &genai.GenerateContentConfig{Temperature: p.temperature}
	}

	started := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(instruction), genConfig)
	if err != nil {
		log.WithError(err).Error("Gemini generate content failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.WithField("elapsed_ms", time.Since(started).Milliseconds()).Debugf("Raw Gemini response:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		if len(result.Candidates) > 0 {
			log = log.WithField("finish_reason", result.Candidates[0].FinishReason)
		}
		log.Warn("Gemini returned no text")
		return "", ErrEmptyResponse
	}

	return raw, nil
}
