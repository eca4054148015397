package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

type client struct {
	githubClient *github.Client
}

type config struct {
	baseURL string
}

// Option is a functional option for the GitHub client
type Option func(*config)

// WithBaseURL overrides the REST API endpoint, e.g. for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new GitHub client authenticated with a personal access token
func NewClient(ctx context.Context, token string, opts ...Option) (interfaces.AccountSource, error) {
	if token == "" {
		return nil, goerr.Wrap(model.ErrInvalidInput, "GitHub token is required")
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	githubClient := github.NewClient(oauth2.NewClient(ctx, ts))

	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub base URL", goerr.V("url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// GetAccount returns the authenticated user
func (c *client) GetAccount(ctx context.Context) (*model.Account, error) {
	user, _, err := c.githubClient.Users.Get(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get authenticated user")
	}

	return &model.Account{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Email:     user.GetEmail(),
		CreatedAt: user.GetCreatedAt().Time,
	}, nil
}
