package config

import "github.com/urfave/cli/v3"

// Storage holds object storage configuration
type Storage struct {
	Bucket          string
	CredentialsFile string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Object storage bucket for release artifacts",
			Required:    true,
			Destination: &c.Bucket,
			Sources:     cli.EnvVars("HERALD_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "credentials-file",
			Usage:       "Service account key file (default: application default credentials)",
			Destination: &c.CredentialsFile,
			Sources:     cli.EnvVars("HERALD_CREDENTIALS_FILE"),
		},
	}
}
