package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/learnai-lambda/docs"
	"github.com/saulo-duarte/learnai-lambda/internal/auth"
	"github.com/saulo-duarte/learnai-lambda/internal/config"
	"github.com/saulo-duarte/learnai-lambda/internal/learn"
	"github.com/saulo-duarte/learnai-lambda/internal/middlewares"
)

type RouterConfig struct {
	LearnHandler   *learn.Handler
	Authenticator  *auth.Authenticator
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if cfg.Authenticator != nil {
		r.Post("/auth/logout", auth.Logout)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Authenticator != nil {
			r.Use(cfg.Authenticator.Middleware)
		}
		r.Mount("/", learn.Routes(cfg.LearnHandler))
	})
	return r
}
