package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// PurgeTrash permanently removes forms trashed longer than olderThan ago.
func (s *Service) PurgeTrash(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, domain.NewValidationError("olderThan", "must be positive")
	}

	threshold := time.Now().UTC().Add(-olderThan)
	purged, err := s.forms.PurgeTrashedBefore(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge trash: %w", err)
	}

	s.metrics.purged(purged)
	s.log.InfoContext(ctx, "trash purged",
		slog.Int64("purged", purged),
		slog.Time("threshold", threshold),
	)
	return purged, nil
}
