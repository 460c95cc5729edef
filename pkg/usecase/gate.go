package usecase

import (
	"fmt"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// releaseGate decides whether the current commit is an authorized
// release point. A false result is an expected skip, never an error:
// most CI runs build commits that simply are not release points.
func (uc *publishUseCase) releaseGate(meta *model.ReleaseMeta) (string, bool) {
	if !meta.Channel.Publishable() {
		return fmt.Sprintf("channel %q is not publishable", meta.Channel), false
	}

	if meta.ReleaseSHA == "" {
		return "no release point is recorded for this channel", false
	}

	if !meta.AtReleasePoint() {
		return fmt.Sprintf("commit %s is not the release point %s", meta.CurrentSHA, meta.ReleaseSHA), false
	}

	return "", true
}
