package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/learnai-lambda/internal/auth"
	"github.com/saulo-duarte/learnai-lambda/internal/config"
	"github.com/saulo-duarte/learnai-lambda/internal/learn"
	"github.com/saulo-duarte/learnai-lambda/internal/router"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Config         *config.Config
	LearnContainer *learn.LearnContainer
	Authenticator  *auth.Authenticator
	Router         http.Handler
}

// New wires the Gemini-backed application from an already loaded configuration.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.InitLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	learnContainer, err := learn.NewLearnContainer(ctx, cfg.Model)
	if err != nil {
		return nil, err
	}
	return build(cfg, learnContainer)
}

// NewWithProvider wires the application around an already built provider.
func NewWithProvider(cfg *config.Config, provider learn.Provider) (*Container, error) {
	return build(cfg, learn.NewLearnContainerWithProvider(provider))
}

func build(cfg *config.Config, learnContainer *learn.LearnContainer) (*Container, error) {
	var authenticator *auth.Authenticator
	if cfg.Auth.JWTSecret != "" {
		a, err := auth.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, err
		}
		authenticator = a
	}

	r := router.New(router.RouterConfig{
		LearnHandler:   learnContainer.Handler,
		Authenticator:  authenticator,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	config.Logger.WithFields(logrus.Fields{
		"model":        cfg.Model.Name,
		"auth_enabled": authenticator != nil,
	}).Info("Application container ready")

	return &Container{
		Config:         cfg,
		LearnContainer: learnContainer,
		Authenticator:  authenticator,
		Router:         r,
	}, nil
}
