package model

// LivecheckRecord is one element of the `brew livecheck --json` output
type LivecheckRecord struct {
	Cask    string            `json:"cask,omitempty"`
	Formula string            `json:"formula,omitempty"`
	Version *LivecheckVersion `json:"version,omitempty"`
}

// LivecheckVersion holds the version fields of a livecheck record
type LivecheckVersion struct {
	Current  string `json:"current"`
	Latest   string `json:"latest"`
	Outdated bool   `json:"outdated"`
}

// Name returns the cask name, falling back to the formula name
func (r *LivecheckRecord) Name() string {
	if r.Cask != "" {
		return r.Cask
	}
	return r.Formula
}

// LatestVersion returns the newer upstream version, or "" if the record has none
func (r *LivecheckRecord) LatestVersion() string {
	if r.Version == nil {
		return ""
	}
	return r.Version.Latest
}
