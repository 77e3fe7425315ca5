package hazards

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var log = logrus.WithField("prefix", "hazards")

// usgsResponse is the subset of the USGS GeoJSON feed we consume.
type usgsResponse struct {
	Features []struct {
		ID         string `json:"id"`
		Properties struct {
			Mag   float64 `json:"mag"`
			Place string  `json:"place"`
			Time  int64   `json:"time"`
		} `json:"properties"`
		Geometry domain.HazardGeometry `json:"geometry"`
	} `json:"features"`
}

// USGSClient implements domain.HazardFeed against the USGS earthquake
// feed, supplemented with static flood/cyclone events until those feeds
// are integrated.
type USGSClient struct {
	url        string
	httpClient *http.Client
	now        func() time.Time
}

// NewUSGSClient creates a hazard feed client with a network timeout.
func NewUSGSClient(url string, timeout time.Duration) *USGSClient {
	return &USGSClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// ActiveEvents implements domain.HazardFeed. An unreachable upstream is
// logged and degrades to the static events only; the call itself never
// fails.
func (c *USGSClient) ActiveEvents(ctx context.Context) ([]domain.HazardEvent, error) {
	events := []domain.HazardEvent{}

	quakes, err := c.fetchEarthquakes(ctx)
	if err != nil {
		log.WithError(err).Warn("USGS feed unavailable, serving static events only")
	} else {
		events = append(events, quakes...)
	}

	events = append(events, c.staticEvents()...)
	return events, nil
}

func (c *USGSClient) fetchEarthquakes(ctx context.Context) ([]domain.HazardEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: USGS returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var feed usgsResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decoding USGS response: %v", domain.ErrUpstreamUnavailable, err)
	}

	events := make([]domain.HazardEvent, 0, len(feed.Features))
	for _, f := range feed.Features {
		severity := "Moderate"
		if f.Properties.Mag >= 5.0 {
			severity = "Extreme"
		}
		events = append(events, domain.HazardEvent{
			ID:   f.ID,
			Type: "Feature",
			Properties: domain.HazardProperties{
				Mag:      f.Properties.Mag,
				Place:    f.Properties.Place,
				Time:     f.Properties.Time,
				Type:     "Earthquake",
				Severity: severity,
			},
			Geometry: f.Geometry,
		})
	}
	return events, nil
}

// staticEvents covers hazard classes without a live feed yet.
func (c *USGSClient) staticEvents() []domain.HazardEvent {
	nowMillis := c.now().UnixMilli()
	return []domain.HazardEvent{
		{
			ID:   "fl67890",
			Type: "Feature",
			Properties: domain.HazardProperties{
				Place:    "Brahmaputra Valley, Assam",
				Time:     nowMillis - 2*time.Hour.Milliseconds(),
				Type:     "Flood",
				Severity: "Severe",
			},
			Geometry: domain.HazardGeometry{Type: "Point", Coordinates: []float64{91.75, 26.2}},
		},
		{
			ID:   "cyc111",
			Type: "Feature",
			Properties: domain.HazardProperties{
				Place:    "Near Bhubaneswar, Odisha Coast",
				Time:     nowMillis - 3*time.Hour.Milliseconds(),
				Type:     "Cyclone",
				Severity: "Extreme",
			},
			Geometry: domain.HazardGeometry{Type: "Point", Coordinates: []float64{85.82, 20.29}},
		},
	}
}
