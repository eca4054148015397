package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
)

// WebhookPath is the endpoint receiving GitHub release webhooks
const WebhookPath = "/hooks/github"

// config holds internal HTTP server configuration
type config struct {
	addr          string
	webhookSecret string
	sentry        bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhookSecret sets the webhook secret
func WithWebhookSecret(secret string) Option {
	return func(c *config) {
		c.webhookSecret = secret
	}
}

// WithSentry reports handler panics to Sentry. The global client must be initialized.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	webhookUC interfaces.WebhookUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.sentry {
		// repanic so that middleware.Recoverer still answers 500
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	router.Get("/health", healthHandler(time.Now()))

	webhookHandler := NewWebhookHandler(cfg.webhookSecret, webhookUC)
	router.Post(WebhookPath, webhookHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       30 * time.Second,
		},
	}

	return server, nil
}
