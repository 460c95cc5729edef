package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/utils/async"
)

// uploadAssets uploads every asset of the platform batch concurrently.
// The first failure cancels the remaining uploads and fails the whole
// batch; already uploaded objects are not rolled back.
func (uc *publishUseCase) uploadAssets(ctx context.Context, meta *model.ReleaseMeta, assets []model.Asset) ([]model.Artifact, error) {
	artifacts := make([]model.Artifact, len(assets))

	tasks := make([]func(ctx context.Context) error, 0, len(assets))
	for i, asset := range assets {
		tasks = append(tasks, func(ctx context.Context) error {
			artifact, err := uc.uploadAsset(ctx, meta, asset)
			if err != nil {
				return err
			}
			artifacts[i] = *artifact
			return nil
		})
	}

	if err := async.JoinAll(ctx, tasks...); err != nil {
		return nil, goerr.Wrap(err, "failed to upload release assets")
	}

	return artifacts, nil
}

// uploadAsset streams one file to object storage. The upload stream is
// teed through a SHA-1 hash so the reported digest covers exactly the
// bytes stored, even if the file changes on disk afterwards.
func (uc *publishUseCase) uploadAsset(ctx context.Context, meta *model.ReleaseMeta, asset model.Asset) (*model.Artifact, error) {
	logger := ctxlog.From(ctx)

	f, err := os.Open(asset.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open asset", goerr.V("path", asset.Path))
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat asset", goerr.V("path", asset.Path))
	}

	key := model.ObjectKey(meta.Version, meta.CurrentSHA, asset.Name)
	hash := sha1.New()

	logger.Info("uploading asset",
		slog.String("name", asset.Name),
		slog.String("key", key),
		slog.Int64("size", stat.Size()),
	)

	url, err := uc.storage.Upload(ctx, key, io.TeeReader(f, hash))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload asset",
			goerr.V("name", asset.Name), goerr.V("key", key))
	}

	return &model.Artifact{
		Name: asset.Name,
		URL:  url,
		Size: stat.Size(),
		SHA:  hex.EncodeToString(hash.Sum(nil)),
	}, nil
}
