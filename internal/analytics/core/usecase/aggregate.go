package usecase

import (
	"sort"
	"time"

	"proposal-insights-service/internal/analytics/core/domain"
)

// completionThreshold is the fraction of a proposal's slides a session
// must touch to count as a completed read.
const completionThreshold = 0.8

// sessionGroup collects every event belonging to one ViewID, in input order.
type sessionGroup struct {
	viewID string
	events []domain.ViewEvent
}

// groupSessions buckets events by ViewID, preserving first-seen order so
// downstream sorts can tie-break deterministically on input order.
func groupSessions(events []domain.ViewEvent) []*sessionGroup {
	var groups []*sessionGroup
	byID := make(map[string]*sessionGroup)

	for _, e := range events {
		g, ok := byID[e.ViewID]
		if !ok {
			g = &sessionGroup{viewID: e.ViewID}
			byID[e.ViewID] = g
			groups = append(groups, g)
		}
		g.events = append(g.events, e)
	}

	return groups
}

// validSlideIndex reports whether an event's slide index can be attributed
// to a real slide. A non-positive total means the caller does not know the
// slide count, so only negative indices are rejected.
func validSlideIndex(idx, totalSlideCount int) bool {
	if idx < 0 {
		return false
	}
	if totalSlideCount > 0 && idx >= totalSlideCount {
		return false
	}
	return true
}

// ComputeOverview reduces an event log to the proposal-level summary.
// Sessions exist as soon as any event carries their ViewID, even if every
// duration is missing; events with an out-of-range slide index keep the
// session alive but contribute nothing to time or completion figures.
func ComputeOverview(events []domain.ViewEvent, totalSlideCount int) domain.AnalyticsOverview {
	groups := groupSessions(events)
	if len(groups) == 0 {
		return domain.AnalyticsOverview{}
	}

	var (
		unique    int
		totalTime float64
		completed int
	)

	for _, g := range groups {
		if g.events[0].IsUniqueVisitor {
			unique++
		}

		touched := make(map[int]struct{})
		for _, e := range g.events {
			if !validSlideIndex(e.SlideIndex, totalSlideCount) {
				continue
			}
			touched[e.SlideIndex] = struct{}{}
			if e.Duration != nil {
				totalTime += *e.Duration
			}
		}

		if totalSlideCount > 0 {
			ratio := float64(len(touched)) / float64(totalSlideCount)
			if ratio >= completionThreshold {
				completed++
			}
		}
	}

	overview := domain.AnalyticsOverview{
		TotalViews:     len(groups),
		UniqueVisitors: unique,
		AvgTimeSpent:   totalTime / float64(len(groups)),
	}
	if totalSlideCount > 0 {
		overview.CompletionRate = int(float64(completed)/float64(len(groups))*100 + 0.5)
	}
	return overview
}

// heatmapGroup accumulates per-slide state while scanning the event log.
type heatmapGroup struct {
	item       domain.SlideHeatmapItem
	durations  []float64
	sessionIdx map[string]int // ViewID -> index into item.Sessions
}

// ComputeHeatmap reduces an event log to per-slide engagement stats.
// ViewCount is distinct sessions, never raw event count, so a session
// that produced several records for the same slide counts once. Duration
// stats skip unmeasured (nil) durations entirely.
func ComputeHeatmap(events []domain.ViewEvent) []domain.SlideHeatmapItem {
	groups := make(map[int]*heatmapGroup)
	var order []int

	for _, e := range events {
		if e.SlideIndex < 0 {
			continue
		}

		g, ok := groups[e.SlideIndex]
		if !ok {
			g = &heatmapGroup{
				item:       domain.SlideHeatmapItem{SlideIndex: e.SlideIndex},
				sessionIdx: make(map[string]int),
			}
			groups[e.SlideIndex] = g
			order = append(order, e.SlideIndex)
		}

		if g.item.SlideTitle == "" {
			g.item.SlideTitle = e.SlideTitle
		}

		if e.Duration != nil {
			g.durations = append(g.durations, *e.Duration)
		}

		si, seen := g.sessionIdx[e.ViewID]
		if !seen {
			g.sessionIdx[e.ViewID] = len(g.item.Sessions)
			g.item.Sessions = append(g.item.Sessions, domain.SlideSession{
				ViewID:        e.ViewID,
				RecipientName: e.RecipientName,
				DeviceType:    e.DeviceType,
				Duration:      copyDuration(e.Duration),
			})
			continue
		}

		// Repeat record for a slide the session already touched: fold the
		// measured time into the session's entry.
		if e.Duration != nil {
			s := &g.item.Sessions[si]
			if s.Duration == nil {
				s.Duration = copyDuration(e.Duration)
			} else {
				*s.Duration += *e.Duration
			}
		}
	}

	sort.Ints(order)

	items := make([]domain.SlideHeatmapItem, 0, len(order))
	for _, idx := range order {
		g := groups[idx]
		g.item.ViewCount = len(g.item.Sessions)

		if len(g.durations) > 0 {
			sum := 0.0
			min := g.durations[0]
			max := g.durations[0]
			for _, d := range g.durations {
				sum += d
				if d < min {
					min = d
				}
				if d > max {
					max = d
				}
			}
			g.item.AvgDuration = sum / float64(len(g.durations))
			g.item.MinDuration = min
			g.item.MaxDuration = max
		}

		items = append(items, g.item)
	}

	return items
}

// ComputeSessions reduces an event log to per-viewer sessions, most recent
// first. Equal start times keep their input order.
func ComputeSessions(events []domain.ViewEvent, totalSlideCount int) []domain.ViewerSession {
	groups := groupSessions(events)

	sessions := make([]domain.ViewerSession, 0, len(groups))
	for _, g := range groups {
		first := g.events[0]
		s := domain.ViewerSession{
			ViewID:          g.viewID,
			RecipientName:   first.RecipientName,
			RecipientEmail:  first.RecipientEmail,
			DeviceType:      domain.NormalizeDeviceType(first.DeviceType),
			IsUniqueVisitor: first.IsUniqueVisitor,
			StartedAt:       first.StartedAt,
			TotalSlides:     totalSlideCount,
		}

		slideIdx := make(map[int]int) // slide index -> position in s.Slides
		for _, e := range g.events {
			if !validSlideIndex(e.SlideIndex, totalSlideCount) {
				continue
			}

			pos, seen := slideIdx[e.SlideIndex]
			if !seen {
				slideIdx[e.SlideIndex] = len(s.Slides)
				s.Slides = append(s.Slides, domain.SessionSlide{
					SlideIndex: e.SlideIndex,
					SlideTitle: e.SlideTitle,
					Duration:   copyDuration(e.Duration),
				})
			} else {
				sl := &s.Slides[pos]
				if sl.SlideTitle == "" {
					sl.SlideTitle = e.SlideTitle
				}
				if e.Duration != nil {
					if sl.Duration == nil {
						sl.Duration = copyDuration(e.Duration)
					} else {
						*sl.Duration += *e.Duration
					}
				}
			}

			if e.Duration != nil {
				s.TotalDuration += *e.Duration
			}
		}

		sort.Slice(s.Slides, func(i, j int) bool {
			return s.Slides[i].SlideIndex < s.Slides[j].SlideIndex
		})

		for _, sl := range s.Slides {
			if sl.Duration != nil {
				s.SlidesViewed++
			}
		}

		sessions = append(sessions, s)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions
}

// HasRecentViewer reports whether any session started within window of now.
// Callers poll this on a fixed interval; each call is independent.
func HasRecentViewer(events []domain.ViewEvent, now time.Time, window time.Duration) bool {
	if window <= 0 {
		return false
	}
	cutoff := now.Add(-window)
	for _, e := range events {
		if !e.StartedAt.Before(cutoff) {
			return true
		}
	}
	return false
}

func copyDuration(d *float64) *float64 {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
