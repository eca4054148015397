package config

import "github.com/urfave/cli/v3"

// Brew holds paths of the external tools
type Brew struct {
	BrewBin string
	GitBin  string
}

// Flags returns CLI flags for tool paths
func (c *Brew) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "brew",
			Usage:       "Path to the brew executable",
			Value:       "brew",
			Destination: &c.BrewBin,
			Sources:     cli.EnvVars("HOMEBREW_BREW_FILE"),
		},
		&cli.StringFlag{
			Name:        "git",
			Usage:       "Path to the git executable",
			Value:       "git",
			Destination: &c.GitBin,
			Sources:     cli.EnvVars("HOMEBREW_GIT"),
		},
	}
}
