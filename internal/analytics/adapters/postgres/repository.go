package postgres

import (
	"context"
	"database/sql"

	"proposal-insights-service/internal/analytics/core/domain"
	"proposal-insights-service/internal/analytics/core/ports"
)

// ViewEventRepository reads the persisted engagement event log. Aggregation
// happens in the core; this adapter only materializes the snapshot.
type ViewEventRepository struct {
	db DB
}

func NewViewEventRepository(db DB) *ViewEventRepository {
	return &ViewEventRepository{db: db}
}

var _ ports.ViewEventReaderPort = (*ViewEventRepository)(nil)

const listViewEventsSQL = `
SELECT
    link_id,
    view_id,
    slide_index,
    COALESCE(slide_title, ''),
    duration_seconds,
    started_at,
    COALESCE(recipient_name, ''),
    COALESCE(recipient_email, ''),
    COALESCE(device_type, ''),
    is_unique_visitor
FROM view_events
WHERE proposal_id = $1
ORDER BY started_at, view_id, slide_index`

const countSlidesSQL = `
SELECT COUNT(*)
FROM proposal_slides
WHERE proposal_id = $1`

func (r *ViewEventRepository) ListViewEvents(ctx context.Context, proposalID string) ([]domain.ViewEvent, error) {
	rows, err := r.db.QueryContext(ctx, listViewEventsSQL, proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ViewEvent
	for rows.Next() {
		var (
			e        domain.ViewEvent
			duration sql.NullFloat64
			device   string
		)
		if err := rows.Scan(
			&e.LinkID,
			&e.ViewID,
			&e.SlideIndex,
			&e.SlideTitle,
			&duration,
			&e.StartedAt,
			&e.RecipientName,
			&e.RecipientEmail,
			&device,
			&e.IsUniqueVisitor,
		); err != nil {
			return nil, err
		}

		if duration.Valid {
			d := duration.Float64
			e.Duration = &d
		}
		e.DeviceType = domain.NormalizeDeviceType(device)

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *ViewEventRepository) CountSlides(ctx context.Context, proposalID string) (int, error) {
	rows, err := r.db.QueryContext(ctx, countSlidesSQL, proposalID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return count, nil
}
