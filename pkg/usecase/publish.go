package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

type publishUseCase struct {
	meta    interfaces.MetadataProvider
	storage interfaces.ObjectStorage
	deploy  interfaces.DeployClient
	runner  interfaces.CommandRunner

	packageCmd []string
	platform   model.Platform // empty means detect from runtime.GOOS
}

// Option is a functional option for the publish use case
type Option func(*publishUseCase)

// WithPackageCommand sets the external packaging command to run before
// uploading. An empty command skips the packaging stage, for builds
// that package as a separate CI step.
func WithPackageCommand(cmd []string) Option {
	return func(uc *publishUseCase) {
		uc.packageCmd = cmd
	}
}

// WithPlatform pins the target platform instead of detecting the host
// OS, mainly for tests
func WithPlatform(platform model.Platform) Option {
	return func(uc *publishUseCase) {
		uc.platform = platform
	}
}

// NewPublish creates the release publishing use case
func NewPublish(
	meta interfaces.MetadataProvider,
	storage interfaces.ObjectStorage,
	deploy interfaces.DeployClient,
	runner interfaces.CommandRunner,
	opts ...Option,
) interfaces.PublishUseCase {
	uc := &publishUseCase{
		meta:    meta,
		storage: storage,
		deploy:  deploy,
		runner:  runner,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Publish runs the whole pipeline: gate, packaging, concurrent uploads,
// deploy notification. Gate rejections return a skipped result with a
// nil error; every later failure aborts the run.
func (uc *publishUseCase) Publish(ctx context.Context) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	meta, err := uc.meta.Resolve(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve release metadata")
	}

	if reason, ok := uc.releaseGate(meta); !ok {
		return &model.PublishResult{Skipped: true, Reason: reason}, nil
	}

	platform := uc.platform
	if platform == "" {
		if platform, err = model.CurrentPlatform(); err != nil {
			return nil, err
		}
	}

	logger.Info("publishing release",
		slog.String("version", meta.Version),
		slog.String("channel", string(meta.Channel)),
		slog.String("sha", meta.ShortSHA()),
		slog.String("platform", string(platform)),
	)

	if err := uc.runPackager(ctx); err != nil {
		return nil, err
	}

	assets, err := uc.meta.Assets(platform)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to determine release assets")
	}

	artifacts, err := uc.uploadAssets(ctx, meta, assets)
	if err != nil {
		return nil, err
	}

	if err := uc.notifyDeploy(ctx, meta, platform, artifacts); err != nil {
		return nil, err
	}

	return &model.PublishResult{Artifacts: artifacts}, nil
}

// runPackager invokes the external packaging command and propagates a
// non-zero exit as a fatal error
func (uc *publishUseCase) runPackager(ctx context.Context) error {
	if len(uc.packageCmd) == 0 {
		return nil
	}

	ctxlog.From(ctx).Info("running packager", slog.Any("command", uc.packageCmd))

	if err := uc.runner.Run(ctx, uc.packageCmd[0], uc.packageCmd[1:]...); err != nil {
		return goerr.Wrap(err, "packaging failed")
	}

	return nil
}
