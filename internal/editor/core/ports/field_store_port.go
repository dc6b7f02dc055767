package ports

import (
	"context"

	"proposal-insights-service/internal/editor/core/domain"
)

// FieldStorePort persists a slide's field set. ReplaceFields swaps the
// whole set atomically: a save fully replaces whatever was stored before,
// with no partial-write or merge semantics.
type FieldStorePort interface {
	LoadFields(ctx context.Context, slideID string) ([]domain.FieldDef, error)
	ReplaceFields(ctx context.Context, slideID string, fields []domain.FieldDef) error
}
