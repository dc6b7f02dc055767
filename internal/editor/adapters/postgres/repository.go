package postgres

import (
	"context"

	"proposal-insights-service/internal/editor/core/domain"
	"proposal-insights-service/internal/editor/core/ports"
)

// FieldRepository persists slide field sets. A save deletes the slide's
// previous set and inserts the new one inside a single transaction, so
// readers never observe a partial replacement.
type FieldRepository struct {
	db DB
}

func NewFieldRepository(db DB) *FieldRepository {
	return &FieldRepository{db: db}
}

var _ ports.FieldStorePort = (*FieldRepository)(nil)

const loadFieldsSQL = `
SELECT
    id,
    name,
    label,
    type,
    x,
    y,
    width,
    height,
    font_size,
    font_family,
    font_weight,
    color,
    text_align,
    COALESCE(auto_fill, '')
FROM slide_fields
WHERE slide_id = $1
ORDER BY position`

const deleteFieldsSQL = `
DELETE FROM slide_fields WHERE slide_id = $1`

const insertFieldSQL = `
INSERT INTO slide_fields (
    slide_id,
    id,
    name,
    label,
    type,
    x,
    y,
    width,
    height,
    font_size,
    font_family,
    font_weight,
    color,
    text_align,
    auto_fill,
    position
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15, $16
)`

func (r *FieldRepository) LoadFields(ctx context.Context, slideID string) ([]domain.FieldDef, error) {
	rows, err := r.db.QueryContext(ctx, loadFieldsSQL, slideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []domain.FieldDef
	for rows.Next() {
		var f domain.FieldDef
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Label,
			&f.Type,
			&f.X,
			&f.Y,
			&f.Width,
			&f.Height,
			&f.FontSize,
			&f.FontFamily,
			&f.FontWeight,
			&f.Color,
			&f.TextAlign,
			&f.AutoFill,
		); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fields, nil
}

func (r *FieldRepository) ReplaceFields(ctx context.Context, slideID string, fields []domain.FieldDef) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := replaceInTx(ctx, tx, slideID, fields); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func replaceInTx(ctx context.Context, tx Tx, slideID string, fields []domain.FieldDef) error {
	if _, err := tx.ExecContext(ctx, deleteFieldsSQL, slideID); err != nil {
		return err
	}

	for i, f := range fields {
		var autoFill any
		if f.AutoFill != "" {
			autoFill = f.AutoFill
		}

		if _, err := tx.ExecContext(ctx, insertFieldSQL,
			slideID,
			f.ID,
			f.Name,
			f.Label,
			f.Type,
			f.X,
			f.Y,
			f.Width,
			f.Height,
			f.FontSize,
			f.FontFamily,
			f.FontWeight,
			f.Color,
			f.TextAlign,
			autoFill,
			i,
		); err != nil {
			return err
		}
	}

	return nil
}
