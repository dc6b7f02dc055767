package fiber

import (
	"proposal-insights-service/internal/editor/core/domain"
)

// FieldDTO mirrors the persisted field shape on the wire.
// @Description Slide overlay field DTO
type FieldDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Type       string  `json:"type"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FontSize   int     `json:"font_size"`
	FontFamily string  `json:"font_family"`
	FontWeight string  `json:"font_weight"`
	Color      string  `json:"color"`
	TextAlign  string  `json:"text_align"`
	AutoFill   string  `json:"auto_fill,omitempty"`
}

type FieldsResponse struct {
	Fields []FieldDTO `json:"fields"`
}

type SaveFieldsRequest struct {
	Fields []FieldDTO `json:"fields"`
}

type SaveFieldsResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PreviewRequest documents the preview payload. The handler decodes the
// field list leniently: an unexpected shape is treated as an empty set.
type PreviewRequest struct {
	Fields []FieldDTO        `json:"fields"`
	Values map[string]string `json:"values"`
}

type PreviewResponse struct {
	Fields []ProjectedFieldDTO `json:"fields"`
}

type ProjectedFieldDTO struct {
	FieldID     string     `json:"field_id"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Text        string     `json:"text"`
	Placeholder bool       `json:"placeholder"`
	Rows        [][]string `json:"rows,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_field_set"`
	Message string `json:"message" example:"Field set failed validation"`
}

func toDomain(in []FieldDTO) []domain.FieldDef {
	out := make([]domain.FieldDef, 0, len(in))
	for _, d := range in {
		out = append(out, domain.FieldDef{
			ID:         d.ID,
			Name:       d.Name,
			Label:      d.Label,
			Type:       d.Type,
			X:          d.X,
			Y:          d.Y,
			Width:      d.Width,
			Height:     d.Height,
			FontSize:   d.FontSize,
			FontFamily: d.FontFamily,
			FontWeight: d.FontWeight,
			Color:      d.Color,
			TextAlign:  d.TextAlign,
			AutoFill:   d.AutoFill,
		})
	}
	return out
}

func fromDomain(in []domain.FieldDef) []FieldDTO {
	out := make([]FieldDTO, 0, len(in))
	for _, f := range in {
		out = append(out, FieldDTO{
			ID:         f.ID,
			Name:       f.Name,
			Label:      f.Label,
			Type:       f.Type,
			X:          f.X,
			Y:          f.Y,
			Width:      f.Width,
			Height:     f.Height,
			FontSize:   f.FontSize,
			FontFamily: f.FontFamily,
			FontWeight: f.FontWeight,
			Color:      f.Color,
			TextAlign:  f.TextAlign,
			AutoFill:   f.AutoFill,
		})
	}
	return out
}
