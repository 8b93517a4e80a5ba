package services

import (
	"time"
)

// PerformanceService reports coarse timing and interaction telemetry through
// the analytics sink — the client-process equivalent of page-load timing and
// click tracking.
type PerformanceService struct {
	analytics *AnalyticsService
	started   time.Time
}

func NewPerformanceService(analytics *AnalyticsService) *PerformanceService {
	return &PerformanceService{
		analytics: analytics,
		started:   time.Now(),
	}
}

// TrackStartup reports how long the client took from construction to ready,
// in milliseconds.
func (s *PerformanceService) TrackStartup() {
	elapsed := float64(time.Since(s.started).Microseconds()) / 1000.0
	_ = s.analytics.Track("pageLoad", map[string]interface{}{
		"time": elapsed,
	})
}

// TrackInteraction reports one coarse user interaction (which control, what
// it said) without blocking the caller.
func (s *PerformanceService) TrackInteraction(element, text string) {
	s.analytics.TrackAsync("userInteraction", map[string]interface{}{
		"element": element,
		"text":    text,
	})
}
