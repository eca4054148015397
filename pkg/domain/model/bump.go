package model

import "github.com/m-mizutani/caskbump/pkg/domain/types"

// BumpConfig is the run configuration built once at the CLI boundary
type BumpConfig struct {
	Tap       string       // optional "user/tap"
	Names     []string     // cask names; exactly one is required in explicit-tag mode
	Tag       ReleaseTag   // required in explicit-tag mode
	Message   string       // optional extra PR message
	ForkOrg   string       // optional organization to fork into
	Force     types.Flag
	DryRun    types.Flag
	Livecheck types.Flag // scan mode when enabled
}

// ScanMode reports whether the run discovers candidates with livecheck
func (c BumpConfig) ScanMode() bool {
	return c.Livecheck.Enabled()
}

// BumpCandidate is one cask to bump to a target version
type BumpCandidate struct {
	Name    string
	Version string
	URL     string // download URL override, empty for none
}

// BumpRequest is the uniform argument set of one bump command invocation
type BumpRequest struct {
	Message string
	Version string
	URL     string
	ForkOrg string
	Force   bool
	DryRun  bool
	Names   []string
}

// Resolution is the outcome of resolving an explicit tag against a cask
type Resolution struct {
	Entry          ManifestEntry
	Current        DownloadDescriptor
	Version        Version
	UpToDate       bool   // no update needed
	SubstitutedURL string // current URL with the version replaced
	Candidate      BumpCandidate
	InstallHelper  string // helper formula to install before bumping, if any
}

// BumpOutcome is the result of bumping a single candidate
type BumpOutcome struct {
	Candidate BumpCandidate
	Err       error
}

// Succeeded reports whether the bump command completed without error
func (o BumpOutcome) Succeeded() bool {
	return o.Err == nil
}

// RunResult aggregates the outcomes of one run
type RunResult struct {
	ID       string
	NoOp     bool
	Outcomes []BumpOutcome
	LastErr  error
}

// Record appends an outcome and keeps the most recent failure
func (r *RunResult) Record(o BumpOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Err != nil {
		r.LastErr = o.Err
	}
}

// Err returns the last captured failure, or nil when every candidate succeeded
func (r *RunResult) Err() error {
	return r.LastErr
}

// Failed counts the failed outcomes
func (r *RunResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			n++
		}
	}
	return n
}
