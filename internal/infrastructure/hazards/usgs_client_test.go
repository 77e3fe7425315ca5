package hazards

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/dmhub/domain"
)

const sampleFeed = `{
	"features": [
		{
			"id": "us7000abcd",
			"properties": {"mag": 6.1, "place": "120 km SW of Port Blair, India", "time": 1756300000000},
			"geometry": {"type": "Point", "coordinates": [92.5, 11.2, 10.0]}
		},
		{
			"id": "us7000wxyz",
			"properties": {"mag": 4.2, "place": "Hindu Kush region", "time": 1756310000000},
			"geometry": {"type": "Point", "coordinates": [70.9, 36.5, 200.0]}
		}
	]
}`

func fixedClock() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func newTestClient(url string) *USGSClient {
	c := NewUSGSClient(url, time.Second)
	c.now = fixedClock
	return c
}

func eventByID(t *testing.T, events []domain.HazardEvent, id string) domain.HazardEvent {
	t.Helper()
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("event %q not found", id)
	return domain.HazardEvent{}
}

func TestUSGSClient_ActiveEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	events, err := newTestClient(srv.URL).ActiveEvents(context.Background())
	require.NoError(t, err)

	// Two quakes plus the two static events.
	require.Len(t, events, 4)

	strong := eventByID(t, events, "us7000abcd")
	assert.Equal(t, "Earthquake", strong.Properties.Type)
	assert.Equal(t, "Extreme", strong.Properties.Severity, "magnitude 5.0 and above is Extreme")
	assert.Equal(t, 6.1, strong.Properties.Mag)
	assert.Equal(t, "Point", strong.Geometry.Type)

	weak := eventByID(t, events, "us7000wxyz")
	assert.Equal(t, "Moderate", weak.Properties.Severity)
}

func TestUSGSClient_ActiveEvents_StaticEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	events, err := newTestClient(srv.URL).ActiveEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	flood := eventByID(t, events, "fl67890")
	assert.Equal(t, "Flood", flood.Properties.Type)
	assert.Equal(t, "Severe", flood.Properties.Severity)
	assert.Equal(t, fixedClock().UnixMilli()-2*time.Hour.Milliseconds(), flood.Properties.Time)

	cyclone := eventByID(t, events, "cyc111")
	assert.Equal(t, "Cyclone", cyclone.Properties.Type)
	assert.Equal(t, "Extreme", cyclone.Properties.Severity)
}

func TestUSGSClient_ActiveEvents_UpstreamDownDegrades(t *testing.T) {
	tests := []struct {
		name string
		url  func() (string, func())
	}{
		{
			name: "unreachable host",
			url: func() (string, func()) {
				srv := httptest.NewServer(nil)
				srv.Close()
				return srv.URL, func() {}
			},
		},
		{
			name: "upstream 500",
			url: func() (string, func()) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
				return srv.URL, srv.Close
			},
		},
		{
			name: "malformed body",
			url: func() (string, func()) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("not-json"))
				}))
				return srv.URL, srv.Close
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, cleanup := tt.url()
			defer cleanup()

			events, err := newTestClient(url).ActiveEvents(context.Background())
			require.NoError(t, err, "a dead upstream must not fail the feed")

			require.Len(t, events, 2)
			assert.Equal(t, "fl67890", events[0].ID)
			assert.Equal(t, "cyc111", events[1].ID)
		})
	}
}

func TestUSGSClient_FetchEarthquakes_ErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).fetchEarthquakes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
