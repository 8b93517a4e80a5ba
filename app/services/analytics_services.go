package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/http"
	"github.com/shashiranjanraj/shopeasy/pkg/logger"
	"github.com/shashiranjanraj/shopeasy/pkg/metrics"
)

// AnalyticsService is the telemetry sink: fire-and-forget, at-most-once.
// A failed event is logged and counted, never retried, never queued — losing
// telemetry is an accepted trade-off, not a defect.
type AnalyticsService struct {
	visitID string
	enabled bool
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		visitID: uuid.NewString(),
		enabled: config.AnalyticsEnabled(),
	}
}

type trackPayload struct {
	EventName string                 `json:"eventName"`
	EventData map[string]interface{} `json:"eventData"`
}

// Track sends one event. The response body is ignored entirely.
//
// The returned error is the delivery outcome; it has already been logged and
// counted, and callers normally discard it.
func (s *AnalyticsService) Track(eventName string, eventData map[string]interface{}) error {
	if !s.enabled {
		return nil
	}

	data := make(map[string]interface{}, len(eventData)+1)
	for k, v := range eventData {
		data[k] = v
	}
	data["visitId"] = s.visitID

	resp, err := http.Post(config.APIBaseURL() + "/api/analytics/track").
		Body(trackPayload{EventName: eventName, EventData: data}).
		Send()
	if err == nil && !resp.OK() {
		err = fmt.Errorf("telemetry: rejected with status %d", resp.StatusCode)
	}
	if err != nil {
		metrics.TelemetryDropped.Inc()
		logger.Warn("telemetry: event dropped", "event", eventName, "error", err)
		return err
	}
	return nil
}

// TrackAsync emits the event without blocking the caller. The delivery
// outcome is discarded.
func (s *AnalyticsService) TrackAsync(eventName string, eventData map[string]interface{}) {
	go func() {
		_ = s.Track(eventName, eventData)
	}()
}
