package domain

import "time"

// Device types recorded on a view event. Anything else is normalized
// to the empty string ("unknown").
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// ViewEvent is one slide-dwell record: a recipient had a given slide
// open for Duration seconds during a single viewing session (ViewID).
// Duration is nil when the visit ended before a duration could be
// recorded ("open but unmeasured").
type ViewEvent struct {
	LinkID          string
	ViewID          string
	SlideIndex      int
	SlideTitle      string
	Duration        *float64 // seconds
	StartedAt       time.Time
	RecipientName   string
	RecipientEmail  string
	DeviceType      string
	IsUniqueVisitor bool
}

// AnalyticsOverview is the proposal-level engagement summary.
type AnalyticsOverview struct {
	TotalViews     int
	UniqueVisitors int
	AvgTimeSpent   float64 // mean per-session total duration, seconds
	CompletionRate int     // percentage of sessions that viewed >= 80% of the slides
}

// SlideHeatmapItem aggregates engagement for a single slide index.
type SlideHeatmapItem struct {
	SlideIndex  int
	SlideTitle  string
	ViewCount   int // distinct sessions that touched this slide
	AvgDuration float64
	MinDuration float64
	MaxDuration float64
	Sessions    []SlideSession // one per contributing session, unsorted
}

// SlideSession is one session's contribution to a slide.
type SlideSession struct {
	ViewID        string
	RecipientName string
	DeviceType    string
	Duration      *float64 // nil when the session touched the slide without a measured duration
}

// ViewerSession is the per-viewer breakdown of a single visit.
type ViewerSession struct {
	ViewID          string
	RecipientName   string
	RecipientEmail  string
	DeviceType      string
	IsUniqueVisitor bool
	StartedAt       time.Time
	TotalDuration   float64 // sum of measured slide durations, seconds
	SlidesViewed    int     // distinct slides with a measured duration
	TotalSlides     int
	Slides          []SessionSlide // ordered ascending by slide index
}

// SessionSlide is one distinct slide touched within a session.
type SessionSlide struct {
	SlideIndex int
	SlideTitle string
	Duration   *float64
}

// NormalizeDeviceType maps arbitrary device strings onto the known set.
func NormalizeDeviceType(s string) string {
	switch s {
	case DeviceMobile, DeviceTablet, DeviceDesktop:
		return s
	default:
		return ""
	}
}
