package services_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopeasy/app/services"
	"github.com/shashiranjanraj/shopeasy/pkg/testkit"
)

func TestTrackStampsVisitID(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/analytics/track", 200, nil)
	defer mt.Install()()

	analytics := services.NewAnalyticsService()
	require.NoError(t, analytics.Track("addToCart", map[string]interface{}{"productId": 7}))

	calls := mt.Calls("POST", "/api/analytics/track")
	require.Len(t, calls, 1)

	var payload struct {
		EventName string                 `json:"eventName"`
		EventData map[string]interface{} `json:"eventData"`
	}
	require.NoError(t, json.Unmarshal(calls[0].Body, &payload))
	assert.Equal(t, "addToCart", payload.EventName)
	assert.Equal(t, float64(7), payload.EventData["productId"])
	assert.NotEmpty(t, payload.EventData["visitId"])
}

func TestTrackSharesVisitIDAcrossEvents(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/analytics/track", 200, nil)
	defer mt.Install()()

	analytics := services.NewAnalyticsService()
	require.NoError(t, analytics.Track("pageLoad", nil))
	require.NoError(t, analytics.Track("checkout", nil))

	calls := mt.Calls("POST", "/api/analytics/track")
	require.Len(t, calls, 2)

	visitID := func(c testkit.Call) interface{} {
		var p struct {
			EventData map[string]interface{} `json:"eventData"`
		}
		require.NoError(t, json.Unmarshal(c.Body, &p))
		return p.EventData["visitId"]
	}
	assert.Equal(t, visitID(calls[0]), visitID(calls[1]),
		"one visit identifier spans the whole process lifetime")
}

func TestTrackFailureIsNotRetried(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.StubError("POST", "/api/analytics/track", errors.New("connection refused"))
	defer mt.Install()()

	analytics := services.NewAnalyticsService()
	err := analytics.Track("pageLoad", nil)

	assert.Error(t, err)
	assert.Equal(t, 1, mt.TotalCalls(), "a dropped event stays dropped")
}

func TestTrackDoesNotMutateCallerData(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/analytics/track", 200, nil)
	defer mt.Install()()

	data := map[string]interface{}{"productId": 7}
	require.NoError(t, services.NewAnalyticsService().Track("addToCart", data))

	_, leaked := data["visitId"]
	assert.False(t, leaked, "the visit stamp goes on a copy, not the caller's map")
}
