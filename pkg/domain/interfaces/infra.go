package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// ObjectStorage uploads release artifacts to a publicly readable
// location and returns the resulting URL
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

// DeployClient notifies the deployment endpoint about uploaded
// artifacts with a signed request
type DeployClient interface {
	Notify(ctx context.Context, payload *model.DeployPayload) error
}

// CommandRunner executes an external command synchronously. A non-zero
// exit is returned as an error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// MetadataProvider resolves release metadata and the per-platform set
// of assets to publish. Implementations are read-only for the lifetime
// of a run.
type MetadataProvider interface {
	Resolve(ctx context.Context) (*model.ReleaseMeta, error)
	Assets(platform model.Platform) ([]model.Asset, error)
}
