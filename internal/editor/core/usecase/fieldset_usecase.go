package usecase

import (
	"context"
	"errors"
	"fmt"

	"proposal-insights-service/internal/editor/core/domain"
	"proposal-insights-service/internal/editor/core/ports"
)

var (
	ErrInvalidSlideID  = errors.New("invalid slide id")
	ErrInvalidFieldSet = errors.New("invalid field set")
)

// Tolerance for the far-edge check: geometry is stored at one decimal, so
// a clamped value may sit a hair past the boundary in float terms.
const edgeTolerance = 0.05

// FieldSetUseCase loads and saves a slide's field set. Save validates the
// working set and hands it to the store as one atomic replacement; on
// failure the error is surfaced untouched so the caller can retry with
// its in-memory copy intact.
type FieldSetUseCase struct {
	store ports.FieldStorePort
}

func NewFieldSetUseCase(store ports.FieldStorePort) *FieldSetUseCase {
	return &FieldSetUseCase{store: store}
}

func (uc *FieldSetUseCase) Load(ctx context.Context, slideID string) ([]domain.FieldDef, error) {
	if slideID == "" {
		return nil, ErrInvalidSlideID
	}
	return uc.store.LoadFields(ctx, slideID)
}

func (uc *FieldSetUseCase) Save(ctx context.Context, slideID string, fields []domain.FieldDef) error {
	if slideID == "" {
		return ErrInvalidSlideID
	}
	if err := validateFieldSet(fields); err != nil {
		return err
	}
	return uc.store.ReplaceFields(ctx, slideID, fields)
}

func validateFieldSet(fields []domain.FieldDef) error {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.ID == "" {
			return fmt.Errorf("%w: field with empty id", ErrInvalidFieldSet)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidFieldSet, f.ID)
		}
		seen[f.ID] = struct{}{}

		if !domain.ValidName(f.Name) {
			return fmt.Errorf("%w: field %q has invalid name %q", ErrInvalidFieldSet, f.ID, f.Name)
		}
		if !domain.ValidFieldType(f.Type) {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidFieldSet, f.ID, f.Type)
		}
		if f.X < 0 || f.Y < 0 || f.Width <= 0 || f.Height <= 0 ||
			f.X+f.Width > 100+edgeTolerance || f.Y+f.Height > 100+edgeTolerance {
			return fmt.Errorf("%w: field %q outside canvas", ErrInvalidFieldSet, f.ID)
		}
		if f.FontSize < domain.MinFontSize || f.FontSize > domain.MaxFontSize {
			return fmt.Errorf("%w: field %q font size %d out of range", ErrInvalidFieldSet, f.ID, f.FontSize)
		}
	}

	return nil
}
