package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"

	"scenic-route-service/internal/domain"
	"scenic-route-service/internal/platform/obs"
)

const defaultOSRMBaseURL = "https://router.project-osrm.org"

// OSRMRouteProvider implements RouteProvider against an OSRM HTTP instance.
//
// The public demo server rate-limits aggressively, so all calls go through
// retry/backoff. The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}

	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string  `json:"geometry"`
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// Route fetches the fastest drive between from and to through the optional
// waypoints. A nil route with nil error means OSRM found no route at all.
func (o *OSRMRouteProvider) Route(
	ctx context.Context,
	from, to domain.Coordinate,
	waypoints []domain.Coordinate,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	coords := make([]string, 0, 2+len(waypoints))
	coords = append(coords, formatLonLat(from))
	for _, w := range waypoints {
		coords = append(coords, formatLonLat(w))
	}
	coords = append(coords, formatLonLat(to))

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s?%s",
		o.baseURL, o.profile, strings.Join(coords, ";"),
		url.Values{
			"overview":   {"full"},
			"geometries": {"polyline"},
		}.Encode(),
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		// OSRM signals "no route" with a 400 and a NoRoute code.
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == 400 && strings.Contains(he.Body, "NoRoute") {
			return nil, nil
		}
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var or osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if or.Code != "Ok" || len(or.Routes) == 0 {
		return nil, nil
	}

	best := or.Routes[0]
	decoded, _, err := polyline.DecodeCoords([]byte(best.Geometry))
	if err != nil {
		return nil, fmt.Errorf("decode route geometry: %w", err)
	}

	line := make([]domain.Coordinate, 0, len(decoded))
	for _, pair := range decoded {
		line = append(line, domain.Coordinate{Lat: pair[0], Lon: pair[1]})
	}

	return &domain.Route{
		Polyline:        line,
		DurationSeconds: best.Duration,
		DistanceMeters:  best.Distance,
	}, nil
}

func formatLonLat(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lon, c.Lat)
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (o *OSRMRouteProvider) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (o *OSRMRouteProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429s, 5xx
// responses) using exponential backoff while respecting context cancellation.
func (o *OSRMRouteProvider) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := o.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func isRetryable(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
