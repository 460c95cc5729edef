package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/cli/config"
	"github.com/m-mizutani/herald/pkg/infra/deploy"
	"github.com/m-mizutani/herald/pkg/infra/gcs"
	"github.com/m-mizutani/herald/pkg/infra/manifest"
	"github.com/m-mizutani/herald/pkg/infra/runner"
	"github.com/m-mizutani/herald/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPublish() *cli.Command {
	var (
		releaseCfg  config.Release
		storageCfg  config.Storage
		deployCfg   config.Deploy
		packagerCfg config.Packager
	)

	flags := append(releaseCfg.Flags(), storageCfg.Flags()...)
	flags = append(flags, deployCfg.Flags()...)
	flags = append(flags, packagerCfg.Flags()...)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Publish release artifacts for the current commit",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			provider, err := manifest.New(releaseCfg.ManifestPath,
				manifest.WithCurrentSHA(releaseCfg.CurrentSHA),
				manifest.WithBranch(releaseCfg.Branch),
			)
			if err != nil {
				return err
			}

			store, err := gcs.New(ctx, storageCfg.Bucket,
				gcs.WithCredentialsFile(storageCfg.CredentialsFile),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create storage client")
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("failed to close storage client", slog.Any("error", err))
				}
			}()

			uc := usecase.NewPublish(
				provider,
				store,
				deploy.New(deployCfg.Host, deployCfg.Secret),
				runner.New(),
				usecase.WithPackageCommand(packagerCfg.Args()),
			)

			result, err := uc.Publish(ctx)
			if err != nil {
				return err
			}

			// Skips are part of normal operation: most commits are not
			// release points. They report to stdout and exit 0.
			if result.Skipped {
				color.Yellow("Skipping deploy: %s", result.Reason)
				return nil
			}

			color.Green("Published %d artifacts", len(result.Artifacts))
			for _, artifact := range result.Artifacts {
				fmt.Printf("  %s (%d bytes)\n    %s\n", artifact.Name, artifact.Size, artifact.URL)
			}

			return nil
		},
	}
}
