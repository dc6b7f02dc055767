package domain

import (
	"math"
	"regexp"
)

// Field content types.
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeTable    = "table"
)

// Typography options.
const (
	FontFamilyHeading = "heading"
	FontFamilyBody    = "body"

	FontWeightNormal   = "normal"
	FontWeightMedium   = "medium"
	FontWeightSemibold = "semibold"
	FontWeightBold     = "bold"

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Auto-fill catalog keys: data sources a field can bind to instead of
// manual entry.
const (
	AutoFillClientName  = "client_name"
	AutoFillAdviserName = "adviser_name"
	AutoFillFirmName    = "firm_name"
	AutoFillDate        = "date"
	AutoFillSituation   = "situation"
	AutoFillObjectives  = "objectives"
	AutoFillFocus       = "focus"
)

const (
	// MinFieldSizePct is the smallest width/height a field may have, in
	// percent of the slide canvas.
	MinFieldSizePct = 2.0

	MinFontSize = 8
	MaxFontSize = 72

	DefaultFontSize = 16
	DefaultColor    = "#1a1a1a"
)

var nameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// FieldDef is one overlay region on a slide image. Geometry is expressed
// in percent of the canvas, each value held to one decimal place.
type FieldDef struct {
	ID         string
	Name       string
	Label      string
	Type       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	FontSize   int
	FontFamily string
	FontWeight string
	Color      string
	TextAlign  string
	AutoFill   string // empty when the field is filled manually
}

// FieldPatch is a partial update; nil means "leave unchanged".
type FieldPatch struct {
	Name       *string
	Label      *string
	Type       *string
	X          *float64
	Y          *float64
	Width      *float64
	Height     *float64
	FontSize   *int
	FontFamily *string
	FontWeight *string
	Color      *string
	TextAlign  *string
	AutoFill   *string
}

// TextareaOnlyAutoFill reports whether binding to key forces the field to
// the textarea type. These sources carry multi-line narrative content.
func TextareaOnlyAutoFill(key string) bool {
	switch key {
	case AutoFillSituation, AutoFillObjectives, AutoFillFocus:
		return true
	}
	return false
}

// ValidName reports whether s is a machine slug: lowercase [a-z0-9_]+.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidFieldType reports whether t is a known content type.
func ValidFieldType(t string) bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeTable:
		return true
	}
	return false
}

// ApplyPatch merges the set properties of p into f and returns the result.
// This is the single normalization point: an auto-fill source that only
// makes sense as a textarea forces the type, regardless of any type also
// present in the same patch. Geometry values are rounded to one decimal
// and kept inside the canvas; font size is kept in range. An empty patch
// returns f unchanged.
func (f FieldDef) ApplyPatch(p FieldPatch) FieldDef {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Label != nil {
		f.Label = *p.Label
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Width != nil {
		f.Width = Clamp(Round1(*p.Width), MinFieldSizePct, Round1(100-f.X))
	}
	if p.Height != nil {
		f.Height = Clamp(Round1(*p.Height), MinFieldSizePct, Round1(100-f.Y))
	}
	if p.X != nil {
		f.X = Clamp(Round1(*p.X), 0, Round1(100-f.Width))
	}
	if p.Y != nil {
		f.Y = Clamp(Round1(*p.Y), 0, Round1(100-f.Height))
	}
	if p.FontSize != nil {
		f.FontSize = clampInt(*p.FontSize, MinFontSize, MaxFontSize)
	}
	if p.FontFamily != nil {
		f.FontFamily = *p.FontFamily
	}
	if p.FontWeight != nil {
		f.FontWeight = *p.FontWeight
	}
	if p.Color != nil {
		f.Color = *p.Color
	}
	if p.TextAlign != nil {
		f.TextAlign = *p.TextAlign
	}
	if p.AutoFill != nil {
		f.AutoFill = *p.AutoFill
	}

	// Auto-fill category wins over any explicit type in the same patch.
	if TextareaOnlyAutoFill(f.AutoFill) {
		f.Type = FieldTypeTextarea
	}

	return f
}

// Round1 rounds to one decimal place, the precision fields are stored at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Clamp bounds v to [lo, hi]. A degenerate range collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
