package config

import (
	"os"
	"time"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr         string
	RouteFile    string
	DrainTimeout time.Duration
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("CASKBUMP_ADDR"),
		},
		&cli.StringFlag{
			Name:        "routes",
			Usage:       "TOML file mapping source repositories to casks",
			Required:    true,
			Destination: &c.RouteFile,
			Sources:     cli.EnvVars("CASKBUMP_ROUTES"),
		},
		&cli.DurationFlag{
			Name:        "drain-timeout",
			Usage:       "How long shutdown waits for running bumps",
			Value:       10 * time.Minute,
			Destination: &c.DrainTimeout,
			Sources:     cli.EnvVars("CASKBUMP_DRAIN_TIMEOUT"),
		},
	}
}

// LoadRoutes reads and validates the route file
func (c *Server) LoadRoutes() (*model.Routes, error) {
	raw, err := os.ReadFile(c.RouteFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read route file", goerr.V("path", c.RouteFile))
	}
	return ParseRoutes(raw)
}

// ParseRoutes decodes route definitions in TOML
func ParseRoutes(raw []byte) (*model.Routes, error) {
	var routes model.Routes
	if err := toml.Unmarshal(raw, &routes); err != nil {
		return nil, goerr.Wrap(err, "failed to parse route file")
	}

	for i, r := range routes.Routes {
		if r.Repository == "" || r.Cask == "" {
			return nil, goerr.Wrap(model.ErrInvalidInput, "route requires repository and cask",
				goerr.V("index", i),
				goerr.V("repository", r.Repository),
			)
		}
	}

	return &routes, nil
}
