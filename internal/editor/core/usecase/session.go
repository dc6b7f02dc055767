package usecase

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"proposal-insights-service/internal/editor/core/domain"
)

// Point is a pointer position in percent coordinates of the slide canvas.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in percent coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// GestureState is the single active interaction mode of an editor session.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDrawing
	StateMoving
	StateResizing
)

// gesture is the payload of the active interaction. Exactly one gesture is
// in flight at a time; Idle carries a zero payload.
type gesture struct {
	state   GestureState
	fieldID string
	anchor  Point // draw anchor
	start   Point // pointer position at move/resize start
	origin  Rect  // field rect at move/resize start
	draft   Rect  // live rectangle while drawing
}

var fieldNameSuffixRe = regexp.MustCompile(`^field_(\d+)$`)

// Session owns a working copy of a slide's field set and drives the
// pointer gesture state machine over it. It is not safe for concurrent
// use; the editor assumes a single pointer device and one open session.
type Session struct {
	fields   []domain.FieldDef
	selected string
	g        gesture
}

// NewSession copies the given field set into a working set. A nil input
// (an external store occasionally hands back an unexpected shape) is
// treated as an empty set, never an error.
func NewSession(fields []domain.FieldDef) *Session {
	s := &Session{fields: make([]domain.FieldDef, len(fields))}
	copy(s.fields, fields)
	return s
}

// Fields returns a copy of the working set.
func (s *Session) Fields() []domain.FieldDef {
	out := make([]domain.FieldDef, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Session) State() GestureState {
	return s.g.state
}

func (s *Session) SelectedID() string {
	return s.selected
}

// Select marks a field as selected; unknown ids are ignored.
func (s *Session) Select(id string) {
	if _, ok := s.indexOf(id); ok {
		s.selected = id
	}
}

// ClearSelection is the Escape affordance; the key listener lives outside.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// BeginDraw starts a draw gesture from a pointer-down on empty canvas.
// It also clears the selection, matching click-away behavior.
func (s *Session) BeginDraw(p Point) {
	if s.g.state != StateIdle {
		return
	}
	p = clampPoint(p)
	s.selected = ""
	s.g = gesture{
		state:  StateDrawing,
		anchor: p,
		draft:  Rect{X: domain.Round1(p.X), Y: domain.Round1(p.Y)},
	}
}

// BeginMove starts a move gesture from a pointer-down on a field's body.
func (s *Session) BeginMove(id string, p Point) {
	if s.g.state != StateIdle {
		return
	}
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	f := s.fields[i]
	s.selected = id
	s.g = gesture{
		state:   StateMoving,
		fieldID: id,
		start:   p,
		origin:  Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
	}
}

// BeginResize starts a resize gesture from a pointer-down on a field's
// bottom-right handle.
func (s *Session) BeginResize(id string, p Point) {
	if s.g.state != StateIdle {
		return
	}
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	f := s.fields[i]
	s.selected = id
	s.g = gesture{
		state:   StateResizing,
		fieldID: id,
		start:   p,
		origin:  Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
	}
}

// PointerMove advances the active gesture. With no gesture in flight it is
// a no-op. Geometry is rounded to one decimal on every update so the
// displayed value always matches the stored precision.
func (s *Session) PointerMove(p Point) {
	switch s.g.state {
	case StateDrawing:
		s.g.draft = draftRect(s.g.anchor, p)

	case StateMoving:
		i, ok := s.indexOf(s.g.fieldID)
		if !ok {
			return
		}
		dx := p.X - s.g.start.X
		dy := p.Y - s.g.start.Y
		f := &s.fields[i]
		f.X = domain.Round1(domain.Clamp(s.g.origin.X+dx, 0, 100-s.g.origin.Width))
		f.Y = domain.Round1(domain.Clamp(s.g.origin.Y+dy, 0, 100-s.g.origin.Height))

	case StateResizing:
		i, ok := s.indexOf(s.g.fieldID)
		if !ok {
			return
		}
		dx := p.X - s.g.start.X
		dy := p.Y - s.g.start.Y
		f := &s.fields[i]
		f.Width = domain.Round1(domain.Clamp(s.g.origin.Width+dx, domain.MinFieldSizePct, 100-s.g.origin.X))
		f.Height = domain.Round1(domain.Clamp(s.g.origin.Height+dy, domain.MinFieldSizePct, 100-s.g.origin.Y))
	}
}

// PointerUp ends the active gesture. A finished draw commits a new field
// only when both dimensions exceed the minimum size; sub-threshold drags
// are a mis-click and are discarded silently. A pointer-up with no pending
// gesture is a no-op.
func (s *Session) PointerUp() {
	if s.g.state == StateDrawing {
		d := s.g.draft
		if d.Width > domain.MinFieldSizePct && d.Height > domain.MinFieldSizePct {
			f := s.newField(d)
			s.fields = append(s.fields, f)
			s.selected = f.ID
		}
	}
	s.g = gesture{}
}

// PointerLeave ends the gesture exactly like PointerUp, so a pointer that
// exits the canvas mid-gesture cannot leave the session stuck.
func (s *Session) PointerLeave() {
	s.PointerUp()
}

// DraftRect returns the live rectangle of an in-flight draw gesture.
func (s *Session) DraftRect() (Rect, bool) {
	if s.g.state != StateDrawing {
		return Rect{}, false
	}
	return s.g.draft, true
}

// DeleteField removes a field; absent ids are a no-op. Deleting the
// selected field clears the selection.
func (s *Session) DeleteField(id string) {
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	s.fields = append(s.fields[:i], s.fields[i+1:]...)
	if s.selected == id {
		s.selected = ""
	}
}

// DeleteSelected is the Delete/Backspace affordance.
func (s *Session) DeleteSelected() {
	if s.selected != "" {
		s.DeleteField(s.selected)
	}
}

// UpdateField merges a partial update into a field through the domain's
// normalization. It reports whether the field exists.
func (s *Session) UpdateField(id string, p domain.FieldPatch) bool {
	i, ok := s.indexOf(id)
	if !ok {
		return false
	}
	s.fields[i] = s.fields[i].ApplyPatch(p)
	return true
}

func (s *Session) indexOf(id string) (int, bool) {
	for i := range s.fields {
		if s.fields[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// newField builds a committed draw rectangle into a field with default
// styling and the next sequential name.
func (s *Session) newField(r Rect) domain.FieldDef {
	n := s.nextFieldNumber()
	return domain.FieldDef{
		ID:         uuid.NewString(),
		Name:       fmt.Sprintf("field_%d", n),
		Label:      fmt.Sprintf("Field %d", n),
		Type:       domain.FieldTypeText,
		X:          r.X,
		Y:          r.Y,
		Width:      r.Width,
		Height:     r.Height,
		FontSize:   domain.DefaultFontSize,
		FontFamily: domain.FontFamilyBody,
		FontWeight: domain.FontWeightNormal,
		Color:      domain.DefaultColor,
		TextAlign:  domain.AlignLeft,
	}
}

// nextFieldNumber picks one past the highest field_N suffix in use, so
// deleting and redrawing never collides with an existing name.
func (s *Session) nextFieldNumber() int {
	max := 0
	for _, f := range s.fields {
		m := fieldNameSuffixRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// draftRect is the axis-aligned bounding box of the anchor and the current
// pointer, clipped to the canvas, so drag direction is irrelevant.
func draftRect(anchor, p Point) Rect {
	x0, x1 := anchor.X, p.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := anchor.Y, p.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	x0 = domain.Clamp(x0, 0, 100)
	x1 = domain.Clamp(x1, 0, 100)
	y0 = domain.Clamp(y0, 0, 100)
	y1 = domain.Clamp(y1, 0, 100)

	r := Rect{
		X:      domain.Round1(x0),
		Y:      domain.Round1(y0),
		Width:  domain.Round1(x1 - x0),
		Height: domain.Round1(y1 - y0),
	}
	// Rounding X and Width independently can overshoot the far edge by a
	// tenth; pull the size back in.
	if r.X+r.Width > 100 {
		r.Width = domain.Round1(100 - r.X)
	}
	if r.Y+r.Height > 100 {
		r.Height = domain.Round1(100 - r.Y)
	}
	return r
}

func clampPoint(p Point) Point {
	return Point{
		X: domain.Clamp(p.X, 0, 100),
		Y: domain.Clamp(p.Y, 0, 100),
	}
}
