package ports

import (
	"context"

	"proposal-insights-service/internal/analytics/core/domain"
)

// ViewEventReaderPort supplies the raw material for engagement aggregation:
// the persisted event log for a proposal and the proposal's flattened slide
// count (intro + product modules).
type ViewEventReaderPort interface {
	ListViewEvents(ctx context.Context, proposalID string) ([]domain.ViewEvent, error)
	CountSlides(ctx context.Context, proposalID string) (int, error)
}
