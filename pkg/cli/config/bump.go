package config

import (
	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/caskbump/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Bump holds the raw bump inputs. Boolean-ish values stay strings: blank and
// "false" mean disabled, any other value enables the option.
type Bump struct {
	Cask      string
	Tag       string
	Tap       string
	Message   string
	Org       string
	Force     string
	DryRun    string
	Livecheck string
}

// Flags returns CLI flags for a bump run
func (c *Bump) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cask",
			Usage:       "Cask name, or whitespace separated names with --livecheck",
			Destination: &c.Cask,
			Sources:     cli.EnvVars("CASKBUMP_CASK", "HOMEBREW_BUMP_CASK"),
		},
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "Release tag the new version is derived from (e.g. refs/tags/v1.2.3)",
			Destination: &c.Tag,
			Sources:     cli.EnvVars("CASKBUMP_TAG", "HOMEBREW_BUMP_TAG"),
		},
		&cli.StringFlag{
			Name:        "tap",
			Usage:       "Tap containing the casks (user/repo)",
			Destination: &c.Tap,
			Sources:     cli.EnvVars("CASKBUMP_TAP", "HOMEBREW_BUMP_TAP"),
		},
		&cli.StringFlag{
			Name:        "message",
			Usage:       "Message prepended to the pull request body",
			Destination: &c.Message,
			Sources:     cli.EnvVars("CASKBUMP_MESSAGE", "HOMEBREW_BUMP_MESSAGE"),
		},
		&cli.StringFlag{
			Name:        "org",
			Usage:       "Organization to fork the tap into",
			Destination: &c.Org,
			Sources:     cli.EnvVars("CASKBUMP_ORG", "HOMEBREW_BUMP_ORG"),
		},
		&cli.StringFlag{
			Name:        "force",
			Usage:       "Open a pull request even if one is already open (any value but blank or \"false\")",
			Destination: &c.Force,
			Sources:     cli.EnvVars("CASKBUMP_FORCE", "HOMEBREW_BUMP_FORCE"),
		},
		&cli.StringFlag{
			Name:        "dry-run",
			Usage:       "Print what would be done without opening pull requests (any value but blank or \"false\")",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("CASKBUMP_DRY_RUN", "HOMEBREW_BUMP_DRYRUN", "HOMEBREW_BUMP_DRY_RUN"),
		},
		&cli.StringFlag{
			Name:        "livecheck",
			Usage:       "Bump every outdated cask reported by livecheck (any value but blank or \"false\")",
			Destination: &c.Livecheck,
			Sources:     cli.EnvVars("CASKBUMP_LIVECHECK", "HOMEBREW_BUMP_LIVECHECK"),
		},
	}
}

// BuildConfig normalizes the raw inputs
func (c *Bump) BuildConfig() model.BumpConfig {
	return model.BumpConfig{
		Tap:       c.Tap,
		Names:     model.SplitNames(c.Cask),
		Tag:       model.ReleaseTag(c.Tag),
		Message:   c.Message,
		ForkOrg:   c.Org,
		Force:     types.ParseFlag(c.Force),
		DryRun:    types.ParseFlag(c.DryRun),
		Livecheck: types.ParseFlag(c.Livecheck),
	}
}

// ServeFlags returns the subset of flags applied to webhook triggered runs
func (c *Bump) ServeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "force",
			Usage:       "Open pull requests even if one is already open",
			Destination: &c.Force,
			Sources:     cli.EnvVars("CASKBUMP_FORCE"),
		},
		&cli.StringFlag{
			Name:        "dry-run",
			Usage:       "Print what would be done without opening pull requests",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("CASKBUMP_DRY_RUN"),
		},
	}
}
