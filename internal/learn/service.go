package learn

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/learnai-lambda/internal/config"
)

type Service interface {
	Learn(ctx context.Context, req LearnRequest) (string, error)
	Tasks() []TaskInfo
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// Learn compiles the instruction for req and forwards it to the provider.
// It returns ErrInvalidRequest, ErrUnsupportedTask or an error wrapping ErrUpstream.
func (s *service) Learn(ctx context.Context, req LearnRequest) (string, error) {
	log := config.WithContext(ctx).WithField("task", req.Task)

	if req.Task == "" || req.Text == "" {
		return "", ErrInvalidRequest
	}

	instruction, err := Compile(req.Task, req.Text)
	if err != nil {
		log.WithError(err).Warn("Rejected unsupported task")
		return "", err
	}

	message, err := s.provider.Generate(ctx, instruction)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	log.WithField("response_chars", len(message)).Info("Learn task completed")
	return message, nil
}

func (s *service) Tasks() []TaskInfo {
	return Tasks()
}
