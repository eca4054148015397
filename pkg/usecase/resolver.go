package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/caskbump/pkg/domain/interfaces"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// UpstreamHelperFormula is installed before bumping casks whose URL is rewritten by
// the upstream index builder, so that their resources are updated as well
const UpstreamHelperFormula = "pipgrip"

// Resolver decides whether a cask needs a bump for a release tag and computes its new URL
type Resolver struct {
	manifests interfaces.ManifestLoader
	upstream  interfaces.UpstreamURLBuilder
}

// NewResolver creates a Resolver. upstream may be nil to disable URL rewriting.
func NewResolver(manifests interfaces.ManifestLoader, upstream interfaces.UpstreamURLBuilder) *Resolver {
	return &Resolver{
		manifests: manifests,
		upstream:  upstream,
	}
}

// Resolve resolves tag against the recorded version of entry
func (r *Resolver) Resolve(ctx context.Context, entry model.ManifestEntry, tag model.ReleaseTag) (*model.Resolution, error) {
	logger := ctxlog.From(ctx)

	version, err := tag.Version()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse release tag", goerr.V("tag", string(tag)))
	}

	fullName := entry.FullName()
	current, err := r.manifests.LoadManifest(ctx, fullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load cask", goerr.V("cask", fullName))
	}

	res := &model.Resolution{
		Entry:   entry,
		Current: *current,
		Version: version,
	}

	if version.EqualString(current.Version) {
		logger.Info("Cask is already up to date",
			"cask", fullName,
			"version", current.Version,
		)
		res.UpToDate = true
		return res, nil
	}

	res.SubstitutedURL = SubstituteVersion(current.URL, current.Version, version.String())
	res.Candidate = model.BumpCandidate{
		Name:    fullName,
		Version: version.String(),
	}

	if r.upstream != nil {
		newURL, ok, err := r.upstream.UpdateURL(ctx, current.URL, version.String())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build upstream index URL",
				goerr.V("url", current.URL),
				goerr.V("version", version.String()),
			)
		}
		if ok {
			res.Candidate.URL = newURL
			res.InstallHelper = UpstreamHelperFormula
		}
	}

	logger.Info("Resolved cask update",
		"cask", fullName,
		"from", current.Version,
		"to", version.String(),
		"url", res.SubstitutedURL,
		"url_override", res.Candidate.URL,
	)

	return res, nil
}

// SubstituteVersion replaces every occurrence of oldVersion in url with newVersion
func SubstituteVersion(url, oldVersion, newVersion string) string {
	if oldVersion == "" {
		return url
	}
	return strings.ReplaceAll(url, oldVersion, newVersion)
}
