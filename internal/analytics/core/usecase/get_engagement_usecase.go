package usecase

import (
	"context"
	"errors"
	"time"

	"proposal-insights-service/internal/analytics/core/domain"
	"proposal-insights-service/internal/analytics/core/ports"
)

var ErrInvalidProposalID = errors.New("invalid proposal id")

// DefaultLiveWindow is how far back a session start may be and still count
// as "viewing right now".
const DefaultLiveWindow = 300 * time.Second

// GetEngagementUseCase loads a proposal's event snapshot through the reader
// port and runs the pure aggregation over it. It holds no state between
// calls; every invocation works on a fresh snapshot.
type GetEngagementUseCase struct {
	reader     ports.ViewEventReaderPort
	liveWindow time.Duration
	now        func() time.Time
}

func NewGetEngagementUseCase(reader ports.ViewEventReaderPort, liveWindow time.Duration) *GetEngagementUseCase {
	if liveWindow <= 0 {
		liveWindow = DefaultLiveWindow
	}
	return &GetEngagementUseCase{
		reader:     reader,
		liveWindow: liveWindow,
		now:        time.Now,
	}
}

func (uc *GetEngagementUseCase) Overview(ctx context.Context, proposalID string) (*domain.AnalyticsOverview, error) {
	events, total, err := uc.load(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	overview := ComputeOverview(events, total)
	return &overview, nil
}

func (uc *GetEngagementUseCase) Heatmap(ctx context.Context, proposalID string) ([]domain.SlideHeatmapItem, error) {
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	events, err := uc.reader.ListViewEvents(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return ComputeHeatmap(events), nil
}

func (uc *GetEngagementUseCase) Sessions(ctx context.Context, proposalID string) ([]domain.ViewerSession, error) {
	events, total, err := uc.load(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return ComputeSessions(events, total), nil
}

func (uc *GetEngagementUseCase) Live(ctx context.Context, proposalID string) (bool, error) {
	if proposalID == "" {
		return false, ErrInvalidProposalID
	}
	events, err := uc.reader.ListViewEvents(ctx, proposalID)
	if err != nil {
		return false, err
	}
	return HasRecentViewer(events, uc.now(), uc.liveWindow), nil
}

func (uc *GetEngagementUseCase) load(ctx context.Context, proposalID string) ([]domain.ViewEvent, int, error) {
	if proposalID == "" {
		return nil, 0, ErrInvalidProposalID
	}
	events, err := uc.reader.ListViewEvents(ctx, proposalID)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.reader.CountSlides(ctx, proposalID)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
