package git

import (
	"context"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Runner runs the git executable
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Client configures git through its CLI
type Client struct {
	bin    string
	runner Runner
}

// New creates a Client running bin, "git" when empty
func New(bin string, runner Runner) *Client {
	if bin == "" {
		bin = "git"
	}
	return &Client{bin: bin, runner: runner}
}

// SetIdentity sets the global commit author name and email
func (c *Client) SetIdentity(ctx context.Context, identity model.Identity) error {
	if err := c.runner.Run(ctx, c.bin, "config", "--global", "user.name", identity.Name); err != nil {
		return goerr.Wrap(err, "failed to set user.name")
	}
	if err := c.runner.Run(ctx, c.bin, "config", "--global", "user.email", identity.Email); err != nil {
		return goerr.Wrap(err, "failed to set user.email")
	}
	return nil
}
