package fiber

// OverviewResponse is the proposal-level engagement summary.
// @Description Proposal engagement overview DTO
type OverviewResponse struct {
	TotalViews     int     `json:"total_views"`
	UniqueVisitors int     `json:"unique_visitors"`
	AvgTimeSpent   float64 `json:"avg_time_spent"`
	CompletionRate int     `json:"completion_rate"`
}

type HeatmapResponse struct {
	Slides []HeatmapSlideResponse `json:"slides"`
}

type HeatmapSlideResponse struct {
	SlideIndex  int                    `json:"slide_index"`
	SlideTitle  string                 `json:"slide_title"`
	ViewCount   int                    `json:"view_count"`
	AvgDuration float64                `json:"avg_duration"`
	MinDuration float64                `json:"min_duration"`
	MaxDuration float64                `json:"max_duration"`
	Sessions    []SlideSessionResponse `json:"sessions"`
}

type SlideSessionResponse struct {
	ViewID        string   `json:"view_id"`
	RecipientName string   `json:"recipient_name"`
	DeviceType    string   `json:"device_type"`
	Duration      *float64 `json:"duration"`
}

type SessionsResponse struct {
	Sessions []ViewerSessionResponse `json:"sessions"`
}

type ViewerSessionResponse struct {
	ViewID          string                 `json:"view_id"`
	RecipientName   string                 `json:"recipient_name"`
	RecipientEmail  string                 `json:"recipient_email"`
	DeviceType      string                 `json:"device_type"`
	IsUniqueVisitor bool                   `json:"is_unique_visitor"`
	StartedAt       string                 `json:"started_at"`
	TotalDuration   float64                `json:"total_duration"`
	SlidesViewed    int                    `json:"slides_viewed"`
	TotalSlides     int                    `json:"total_slides"`
	Slides          []SessionSlideResponse `json:"slides"`
}

type SessionSlideResponse struct {
	SlideIndex int      `json:"slide_index"`
	SlideTitle string   `json:"slide_title"`
	Duration   *float64 `json:"duration"`
}

type LiveResponse struct {
	ViewingNow bool `json:"viewing_now"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_proposal"`
	Message string `json:"message" example:"Proposal id is invalid"`
}
