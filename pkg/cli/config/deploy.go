package config

import "github.com/urfave/cli/v3"

// Deploy holds deployment endpoint configuration
type Deploy struct {
	Host   string
	Secret string
}

// Flags returns CLI flags for deploy configuration
func (c *Deploy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "deploy-host",
			Usage:       "Deployment endpoint host",
			Required:    true,
			Destination: &c.Host,
			Sources:     cli.EnvVars("HERALD_DEPLOY_HOST"),
		},
		&cli.StringFlag{
			Name:        "deploy-secret",
			Usage:       "Shared secret for signing deploy notifications",
			Required:    true,
			Destination: &c.Secret,
			Sources:     cli.EnvVars("HERALD_DEPLOY_SECRET", "DEPLOYMENT_SECRET"),
		},
	}
}
