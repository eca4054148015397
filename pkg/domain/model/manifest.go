package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ManifestEntry identifies one cask, optionally qualified by its tap
type ManifestEntry struct {
	Tap  string // "user/tap", optional
	Name string // "cask-name"
}

// FullName returns "user/tap/cask-name" when a tap is set, otherwise the bare name
func (m ManifestEntry) FullName() string {
	if m.Tap == "" || m.Name == "" {
		return m.Name
	}
	return m.Tap + "/" + m.Name
}

// DownloadDescriptor is the currently recorded version and download URL of a cask
type DownloadDescriptor struct {
	Version string
	URL     string
}

// ReleaseTag is a git tag reference such as "refs/tags/v1.2.3" or "v1.2.3"
type ReleaseTag string

const tagRefPrefix = "refs/tags/"

// Name returns the tag with the "refs/tags/" prefix removed
func (t ReleaseTag) Name() string {
	return strings.TrimPrefix(strings.TrimSpace(string(t)), tagRefPrefix)
}

// Version parses the tag name into a Version. Refs other than "refs/tags/..."
// (branches, pull requests) are rejected.
func (t ReleaseTag) Version() (Version, error) {
	raw := strings.TrimSpace(string(t))
	if strings.HasPrefix(raw, "refs/") && !strings.HasPrefix(raw, tagRefPrefix) {
		return Version{}, goerr.Wrap(ErrInvalidVersion, "ref is not a tag", goerr.V("ref", raw))
	}
	return ParseVersion(t.Name())
}

// SplitNames splits a comma, space or newline delimited list and drops blanks
func SplitNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	})

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, f)
		}
	}
	return names
}
