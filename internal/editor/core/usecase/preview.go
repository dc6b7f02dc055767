package usecase

import (
	"strings"

	"proposal-insights-service/internal/editor/core/domain"
)

// ProjectedField is one field's resolved preview content. Placement stays
// with the consumer via the same percent geometry; this projection only
// resolves what to show.
type ProjectedField struct {
	FieldID     string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Text        string
	Placeholder bool       // Text is the field's label standing in for missing content
	Rows        [][]string // parsed grid for table fields
}

// BuildPreviewProjection resolves display content per field: an explicit
// value wins, then the auto-fill sample catalog, then the label as a
// placeholder. Table values are parsed into trimmed cells, one row per
// newline, split on "|"; blank rows are dropped.
func BuildPreviewProjection(fields []domain.FieldDef, valuesByID map[string]string, samples map[string]string) []ProjectedField {
	out := make([]ProjectedField, 0, len(fields))

	for _, f := range fields {
		text := valuesByID[f.ID]
		if text == "" && f.AutoFill != "" {
			text = samples[f.AutoFill]
		}

		placeholder := false
		if text == "" {
			text = f.Label
			placeholder = true
		}

		pf := ProjectedField{
			FieldID:     f.ID,
			X:           f.X,
			Y:           f.Y,
			Width:       f.Width,
			Height:      f.Height,
			Text:        text,
			Placeholder: placeholder,
		}

		if f.Type == domain.FieldTypeTable && !placeholder {
			pf.Rows = parseTableValue(text)
		}

		out = append(out, pf)
	}

	return out
}

func parseTableValue(v string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(v, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "|")
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = strings.TrimSpace(c)
		}
		rows = append(rows, row)
	}
	return rows
}
