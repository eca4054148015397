package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/caskbump/pkg/cli/config"
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

const routeFile = `
[[route]]
repository = "dev/app"
tap = "user/tap"
cask = "app"
message = "Automated release"

[[route]]
repository = "dev/beta"
cask = "beta-app"
fork_org = "my-org"
prerelease = true
`

func TestParseRoutes(t *testing.T) {
	routes, err := config.ParseRoutes([]byte(routeFile))
	gt.NoError(t, err)
	gt.Value(t, len(routes.Routes)).Equal(2)

	r, ok := routes.Find("dev/beta")
	gt.True(t, ok)
	gt.Value(t, *r).Equal(model.Route{
		Repository: "dev/beta",
		Cask:       "beta-app",
		ForkOrg:    "my-org",
		Prerelease: true,
	})
}

func TestParseRoutes_Invalid(t *testing.T) {
	t.Run("missing cask", func(t *testing.T) {
		_, err := config.ParseRoutes([]byte("[[route]]\nrepository = \"dev/app\"\n"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := config.ParseRoutes([]byte("[[route]\n"))
		gt.Error(t, err)
	})
}

func TestServer_LoadRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	gt.NoError(t, os.WriteFile(path, []byte(routeFile), 0o600))

	cfg := &config.Server{RouteFile: path}
	routes, err := cfg.LoadRoutes()
	gt.NoError(t, err)
	gt.Value(t, len(routes.Routes)).Equal(2)

	missing := &config.Server{RouteFile: filepath.Join(t.TempDir(), "none.toml")}
	_, err = missing.LoadRoutes()
	gt.Error(t, err)
}
