package learn

import (
	"context"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
)

type LearnContainer struct {
	Handler *Handler
	Service Service
}

func NewLearnContainer(ctx context.Context, cfg config.ModelConfig) (*LearnContainer, error) {
	provider, err := NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewLearnContainerWithProvider(provider), nil
}

func NewLearnContainerWithProvider(provider Provider) *LearnContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &LearnContainer{
		Handler: handler,
		Service: service,
	}
}
