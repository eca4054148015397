package interfaces

import (
	"context"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
)

// ManifestLoader loads the recorded version and download URL of a cask
type ManifestLoader interface {
	// LoadManifest returns the descriptor of a fully-qualified cask name
	LoadManifest(ctx context.Context, fullName string) (*model.DownloadDescriptor, error)
}

// ScanQuery discovers casks with newer upstream versions
type ScanQuery interface {
	// Livecheck returns one record per checked cask. tap is used only when names is empty.
	Livecheck(ctx context.Context, tap string, names []string) ([]*model.LivecheckRecord, error)
}

// Bumper runs the package manager commands that open pull requests
type Bumper interface {
	// BumpCaskPR opens a version bump pull request
	BumpCaskPR(ctx context.Context, req *model.BumpRequest) error

	// Tap adds a tap repository
	Tap(ctx context.Context, tap string) error

	// Install installs a helper formula
	Install(ctx context.Context, formula string) error
}

// UpstreamURLBuilder rewrites download URLs of package indexes that are not version templates
type UpstreamURLBuilder interface {
	// UpdateURL returns the download URL of version, or ok=false when oldURL is not hosted by the index
	UpdateURL(ctx context.Context, oldURL, version string) (newURL string, ok bool, err error)
}

// AccountSource returns the account the run is authenticated as
type AccountSource interface {
	GetAccount(ctx context.Context) (*model.Account, error)
}

// IdentityConfigurer sets the commit author identity
type IdentityConfigurer interface {
	SetIdentity(ctx context.Context, identity model.Identity) error
}

// Notifier reports the result of a run
type Notifier interface {
	NotifyRun(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) error
}
