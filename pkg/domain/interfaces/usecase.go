package interfaces

import (
	"context"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// PublishUseCase defines the release publishing pipeline
type PublishUseCase interface {
	// Publish runs gate, packaging, upload and deploy notification.
	// A nil error with Skipped set means the commit was not an
	// authorized release point.
	Publish(ctx context.Context) (*model.PublishResult, error)
}
