package config

import "github.com/urfave/cli/v3"

// Release holds the release metadata inputs only the CI environment
// knows. The commit SHA falls back to the variables the supported CI
// providers export.
type Release struct {
	ManifestPath string
	CurrentSHA   string
	Branch       string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "Path to the release manifest",
			Value:       "release.toml",
			Destination: &c.ManifestPath,
			Sources:     cli.EnvVars("HERALD_MANIFEST"),
		},
		&cli.StringFlag{
			Name:        "commit-sha",
			Usage:       "Commit hash being built",
			Required:    true,
			Destination: &c.CurrentSHA,
			Sources:     cli.EnvVars("HERALD_COMMIT_SHA", "CIRCLE_SHA1", "APPVEYOR_REPO_COMMIT"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch name reported to the deploy endpoint",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("HERALD_BRANCH", "CIRCLE_BRANCH", "APPVEYOR_REPO_BRANCH"),
		},
	}
}
