package brew

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Runner runs the brew executable
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Client drives the brew CLI. It implements ManifestLoader, ScanQuery and Bumper.
type Client struct {
	bin    string
	runner Runner
}

// New creates a Client running bin, "brew" when empty
func New(bin string, runner Runner) *Client {
	if bin == "" {
		bin = "brew"
	}
	return &Client{
		bin:    bin,
		runner: runner,
	}
}

type caskInfo struct {
	Casks []struct {
		Token     string `json:"token"`
		FullToken string `json:"full_token"`
		Version   string `json:"version"`
		URL       string `json:"url"`
	} `json:"casks"`
}

// LoadManifest loads a cask's version and URL with `brew info --cask --json=v2`
func (c *Client) LoadManifest(ctx context.Context, fullName string) (*model.DownloadDescriptor, error) {
	out, err := c.runner.Output(ctx, c.bin, "info", "--cask", "--json=v2", fullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cask info", goerr.V("cask", fullName))
	}

	var info caskInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, goerr.Wrap(err, "failed to parse cask info", goerr.V("cask", fullName))
	}
	if len(info.Casks) == 0 {
		return nil, goerr.Wrap(model.ErrManifestNotFound, "no cask in brew info output", goerr.V("cask", fullName))
	}

	cask := info.Casks[0]
	return &model.DownloadDescriptor{
		Version: cask.Version,
		URL:     cask.URL,
	}, nil
}

// Livecheck runs `brew livecheck` for newer cask versions. The whole tap is
// checked when names is empty.
func (c *Client) Livecheck(ctx context.Context, tap string, names []string) ([]*model.LivecheckRecord, error) {
	args := []string{
		"livecheck",
		"--cask",
		"--quiet",
		"--newer-only",
		"--full-name",
		"--json",
	}
	if tap != "" && len(names) == 0 {
		args = append(args, "--tap="+tap)
	}
	args = append(args, names...)

	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		return nil, err
	}

	var records []*model.LivecheckRecord
	if len(out) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, goerr.Wrap(err, "failed to parse livecheck output", goerr.V("output", string(out)))
	}

	return records, nil
}

// BumpCaskPR runs `brew bump-cask-pr`
func (c *Client) BumpCaskPR(ctx context.Context, req *model.BumpRequest) error {
	return c.runner.Run(ctx, c.bin, BumpArgs(req)...)
}

// BumpArgs builds the bump-cask-pr arguments of req
func BumpArgs(req *model.BumpRequest) []string {
	args := []string{
		"bump-cask-pr",
		"--no-audit",
		"--no-browse",
		"--message=" + req.Message,
	}
	if req.ForkOrg != "" {
		args = append(args, "--fork-org="+req.ForkOrg)
	}
	args = append(args, "--version="+req.Version)
	if req.URL != "" {
		args = append(args, "--url="+req.URL)
	}
	if req.Force {
		args = append(args, "--force")
	}
	if req.DryRun {
		args = append(args, "--dry-run")
	}
	return append(args, req.Names...)
}

// Tap runs `brew tap`
func (c *Client) Tap(ctx context.Context, tap string) error {
	return c.runner.Run(ctx, c.bin, "tap", tap)
}

// Install runs `brew install`
func (c *Client) Install(ctx context.Context, formula string) error {
	return c.runner.Run(ctx, c.bin, "install", formula)
}
