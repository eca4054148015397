package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/caskbump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSubstituteVersion(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		oldVersion string
		newVersion string
		want       string
	}{
		{
			name:       "single occurrence",
			url:        "https://x/app-1.2.3.zip",
			oldVersion: "1.2.3",
			newVersion: "1.3.0",
			want:       "https://x/app-1.3.0.zip",
		},
		{
			name:       "every occurrence",
			url:        "https://github.com/dev/app/releases/download/v1.2.3/app-1.2.3.dmg",
			oldVersion: "1.2.3",
			newVersion: "2.0.0",
			want:       "https://github.com/dev/app/releases/download/v2.0.0/app-2.0.0.dmg",
		},
		{
			name:       "no occurrence",
			url:        "https://x/app-latest.zip",
			oldVersion: "1.2.3",
			newVersion: "1.3.0",
			want:       "https://x/app-latest.zip",
		},
		{
			name:       "empty old version",
			url:        "https://x/app.zip",
			oldVersion: "",
			newVersion: "1.3.0",
			want:       "https://x/app.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.SubstituteVersion(tt.url, tt.oldVersion, tt.newVersion)).Equal(tt.want)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	entry := model.ManifestEntry{Tap: "user/tap", Name: "app"}

	newBrew := func() *mockBrew {
		return &mockBrew{
			manifests: map[string]*model.DownloadDescriptor{
				"user/tap/app": {Version: "1.2.3", URL: "https://x/app-1.2.3.zip"},
			},
		}
	}

	t.Run("same version is up to date", func(t *testing.T) {
		brew := newBrew()
		upstream := &mockUpstream{}
		resolver := usecase.NewResolver(brew, upstream)

		res, err := resolver.Resolve(ctx, entry, "refs/tags/v1.2.3")
		gt.NoError(t, err)
		gt.True(t, res.UpToDate)
		gt.Value(t, res.Candidate).Equal(model.BumpCandidate{})
		gt.Value(t, upstream.calls).Equal(0)
	})

	t.Run("new version substitutes URL", func(t *testing.T) {
		brew := newBrew()
		resolver := usecase.NewResolver(brew, &mockUpstream{})

		res, err := resolver.Resolve(ctx, entry, "refs/tags/v1.3.0")
		gt.NoError(t, err)
		gt.False(t, res.UpToDate)
		gt.Value(t, res.Version.String()).Equal("1.3.0")
		gt.Value(t, res.SubstitutedURL).Equal("https://x/app-1.3.0.zip")
		gt.Value(t, res.Candidate).Equal(model.BumpCandidate{
			Name:    "user/tap/app",
			Version: "1.3.0",
		})
		gt.Value(t, res.InstallHelper).Equal("")
		gt.Value(t, brew.loadCalls).Equal([]string{"user/tap/app"})
	})

	t.Run("upstream index URL is used verbatim", func(t *testing.T) {
		oldURL := "https://files.pythonhosted.org/packages/aa/bb/pkg-1.2.3.tar.gz"
		builtURL := "https://files.pythonhosted.org/packages/cc/dd/pkg-1.3.0.tar.gz"

		brew := &mockBrew{
			manifests: map[string]*model.DownloadDescriptor{
				"user/tap/app": {Version: "1.2.3", URL: oldURL},
			},
		}
		upstream := &mockUpstream{urls: map[string]string{oldURL: builtURL}}
		resolver := usecase.NewResolver(brew, upstream)

		res, err := resolver.Resolve(ctx, entry, "v1.3.0")
		gt.NoError(t, err)
		gt.Value(t, res.Candidate.URL).Equal(builtURL)
		gt.Value(t, res.SubstitutedURL).NotEqual(builtURL)
		gt.Value(t, res.InstallHelper).Equal(usecase.UpstreamHelperFormula)
	})

	t.Run("malformed tag fails before loading", func(t *testing.T) {
		brew := newBrew()
		resolver := usecase.NewResolver(brew, nil)

		_, err := resolver.Resolve(ctx, entry, "refs/tags/nightly")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidVersion))
		gt.Value(t, len(brew.loadCalls)).Equal(0)
	})

	t.Run("missing manifest", func(t *testing.T) {
		resolver := usecase.NewResolver(&mockBrew{}, nil)

		_, err := resolver.Resolve(ctx, entry, "v1.3.0")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrManifestNotFound))
	})
}
