package model

// ReleaseInfo represents information extracted from a release event
type ReleaseInfo struct {
	Owner       string // Repository owner
	Repo        string // Repository name
	TagName     string // Release tag name
	ReleaseName string // Release name
	Prerelease  bool
}

// FullName returns "owner/repo"
func (r *ReleaseInfo) FullName() string {
	return r.Owner + "/" + r.Repo
}

// Route maps a source repository to the cask bumped on its releases
type Route struct {
	Repository string `toml:"repository"`
	Tap        string `toml:"tap"`
	Cask       string `toml:"cask"`
	Message    string `toml:"message"`
	ForkOrg    string `toml:"fork_org"`
	Prerelease bool   `toml:"prerelease"`
}

// Routes is the parsed route file
type Routes struct {
	Routes []Route `toml:"route"`
}

// Find returns the route registered for repository ("owner/repo")
func (r *Routes) Find(repository string) (*Route, bool) {
	for i := range r.Routes {
		if r.Routes[i].Repository == repository {
			return &r.Routes[i], true
		}
	}
	return nil, false
}
