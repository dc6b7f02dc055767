package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"proposal-insights-service/internal/analytics/core/domain"
	"proposal-insights-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type EngagementReader interface {
	Overview(ctx context.Context, proposalID string) (*domain.AnalyticsOverview, error)
	Heatmap(ctx context.Context, proposalID string) ([]domain.SlideHeatmapItem, error)
	Sessions(ctx context.Context, proposalID string) ([]domain.ViewerSession, error)
	Live(ctx context.Context, proposalID string) (bool, error)
}

type AnalyticsHandler struct {
	uc EngagementReader
}

func NewAnalyticsHandler(uc EngagementReader) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetOverview godoc
// @Summary Proposal engagement overview
// @Description Views, unique visitors, average time spent and completion rate
// @Tags Analytics
// @Produce json
// @Param proposalID path string true "Proposal id"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /proposals/{proposalID}/analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext(), c.Params("proposalID"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(OverviewResponse{
		TotalViews:     out.TotalViews,
		UniqueVisitors: out.UniqueVisitors,
		AvgTimeSpent:   out.AvgTimeSpent,
		CompletionRate: out.CompletionRate,
	})
}

// GetHeatmap godoc
// @Summary Per-slide engagement heatmap
// @Description Distinct-session view counts and dwell-time stats per slide
// @Tags Analytics
// @Produce json
// @Param proposalID path string true "Proposal id"
// @Success 200 {object} HeatmapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /proposals/{proposalID}/analytics/heatmap [get]
func (h *AnalyticsHandler) GetHeatmap(c *fiber.Ctx) error {
	items, err := h.uc.Heatmap(c.UserContext(), c.Params("proposalID"))
	if err != nil {
		return writeError(c, err)
	}

	resp := HeatmapResponse{Slides: make([]HeatmapSlideResponse, 0, len(items))}
	for _, item := range items {
		slide := HeatmapSlideResponse{
			SlideIndex:  item.SlideIndex,
			SlideTitle:  item.SlideTitle,
			ViewCount:   item.ViewCount,
			AvgDuration: item.AvgDuration,
			MinDuration: item.MinDuration,
			MaxDuration: item.MaxDuration,
			Sessions:    make([]SlideSessionResponse, 0, len(item.Sessions)),
		}
		for _, s := range item.Sessions {
			slide.Sessions = append(slide.Sessions, SlideSessionResponse{
				ViewID:        s.ViewID,
				RecipientName: s.RecipientName,
				DeviceType:    s.DeviceType,
				Duration:      s.Duration,
			})
		}
		resp.Slides = append(resp.Slides, slide)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetSessions godoc
// @Summary Viewer session breakdown
// @Description Per-session slide-by-slide journey, most recent first
// @Tags Analytics
// @Produce json
// @Param proposalID path string true "Proposal id"
// @Success 200 {object} SessionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /proposals/{proposalID}/analytics/sessions [get]
func (h *AnalyticsHandler) GetSessions(c *fiber.Ctx) error {
	sessions, err := h.uc.Sessions(c.UserContext(), c.Params("proposalID"))
	if err != nil {
		return writeError(c, err)
	}

	resp := SessionsResponse{Sessions: make([]ViewerSessionResponse, 0, len(sessions))}
	for _, s := range sessions {
		vs := ViewerSessionResponse{
			ViewID:          s.ViewID,
			RecipientName:   s.RecipientName,
			RecipientEmail:  s.RecipientEmail,
			DeviceType:      s.DeviceType,
			IsUniqueVisitor: s.IsUniqueVisitor,
			StartedAt:       s.StartedAt.UTC().Format(time.RFC3339),
			TotalDuration:   s.TotalDuration,
			SlidesViewed:    s.SlidesViewed,
			TotalSlides:     s.TotalSlides,
			Slides:          make([]SessionSlideResponse, 0, len(s.Slides)),
		}
		for _, sl := range s.Slides {
			vs.Slides = append(vs.Slides, SessionSlideResponse{
				SlideIndex: sl.SlideIndex,
				SlideTitle: sl.SlideTitle,
				Duration:   sl.Duration,
			})
		}
		resp.Sessions = append(resp.Sessions, vs)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetLive godoc
// @Summary Liveness probe for a proposal link
// @Description True when any session started within the live window; poll-friendly
// @Tags Analytics
// @Produce json
// @Param proposalID path string true "Proposal id"
// @Success 200 {object} LiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /proposals/{proposalID}/analytics/live [get]
func (h *AnalyticsHandler) GetLive(c *fiber.Ctx) error {
	live, err := h.uc.Live(c.UserContext(), c.Params("proposalID"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(LiveResponse{ViewingNow: live})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_proposal",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
