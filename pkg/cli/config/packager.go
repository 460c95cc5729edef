package config

import (
	"strings"

	"github.com/urfave/cli/v3"
)

// Packager holds the external packaging command configuration
type Packager struct {
	Command string
}

// Flags returns CLI flags for packager configuration
func (c *Packager) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "package-command",
			Usage:       "Packaging command to run before uploading (empty to skip)",
			Destination: &c.Command,
			Sources:     cli.EnvVars("HERALD_PACKAGE_COMMAND"),
		},
	}
}

// Args splits the configured command line on whitespace. The packaging
// command is trusted CI configuration, so no shell quoting is applied.
func (c *Packager) Args() []string {
	return strings.Fields(c.Command)
}
