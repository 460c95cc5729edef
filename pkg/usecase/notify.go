package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

// notifyDeploy assembles the deploy payload and sends the single signed
// notification. The request is not retried; a failed notification fails
// the run even though the artifacts are already uploaded.
func (uc *publishUseCase) notifyDeploy(ctx context.Context, meta *model.ReleaseMeta, platform model.Platform, artifacts []model.Artifact) error {
	payload := &model.DeployPayload{
		Context:    string(platform),
		BranchName: meta.Branch,
		Artifacts:  artifacts,
		Stats: model.DeployStats{
			Platform:           string(platform),
			RendererBundleSize: meta.Stats.RendererBundleSize,
			MainBundleSize:     meta.Stats.MainBundleSize,
		},
	}

	if err := uc.deploy.Notify(ctx, payload); err != nil {
		return goerr.Wrap(err, "failed to notify deploy endpoint")
	}

	ctxlog.From(ctx).Info("notified deploy endpoint",
		slog.Int("artifacts", len(artifacts)),
		slog.String("branch", meta.Branch),
	)

	return nil
}
