package geoapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tripvote/internal/adapters/geoapi"
	"tripvote/internal/domain"
)

func TestNominatim_Geocode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query(); q.Get("q") != "Cancun, Mexico" || q.Get("format") != "json" || q.Get("limit") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if ua := r.Header.Get("User-Agent"); ua != "TripPlanner/1.0" {
			t.Errorf("unexpected user agent %q", ua)
		}
		_, _ = w.Write([]byte(`[{"lat":"21.1619","lon":"-86.8515","display_name":"Cancún"}]`))
	}))
	defer ts.Close()

	n := geoapi.NewNominatim(ts.URL, 100)
	c, err := n.Geocode(context.Background(), "Cancun, Mexico")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Lat != 21.1619 || c.Lon != -86.8515 {
		t.Fatalf("unexpected coords: %+v", c)
	}
}

func TestNominatim_NoMatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	_, err := geoapi.NewNominatim(ts.URL, 100).Geocode(context.Background(), "nowhere")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNominatim_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1:
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`[{"lat":"1.5","lon":"2.5"}]`))
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	c, err := geoapi.NewNominatim(ts.URL, 100).Geocode(ctx, "x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Lat != 1.5 || c.Lon != 2.5 {
		t.Fatalf("unexpected coords: %+v", c)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 calls, got %d", hits)
	}
}

func TestNominatim_RetriesRespectRateLimit(t *testing.T) {
	var (
		mu   sync.Mutex
		hits []time.Time
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		n := len(hits)
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"lat":"1.5","lon":"2.5"}]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := geoapi.NewNominatim(ts.URL, 1).Geocode(ctx, "x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(hits) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(hits))
	}
	if gap := hits[1].Sub(hits[0]); gap < 900*time.Millisecond {
		t.Fatalf("retry after %v exceeds 1 rps", gap)
	}
}

func TestNominatim_ClientErrorIsNotRetried(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := geoapi.NewNominatim(ts.URL, 100).Geocode(context.Background(), "x")
	var se *domain.StatusError
	if !errors.As(err, &se) || se.Status != http.StatusForbidden {
		t.Fatalf("expected 403 StatusError, got %v", err)
	}
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("StatusError should unwrap to ErrUpstream")
	}
	if hits != 1 {
		t.Fatalf("expected a single call, got %d", hits)
	}
}

func TestOpenMeteo_DailyTemps(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/archive" || q.Get("temperature_unit") != "fahrenheit" ||
			q.Get("start_date") != "2023-08-01" || q.Get("end_date") != "2024-08-10" ||
			q.Get("latitude") != "21.0365" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"daily":{"time":["a","b","c"],"temperature_2m_max":[90.1,null,91.3],"temperature_2m_min":[77,78,null]}}`))
	}))
	defer ts.Close()

	om := geoapi.NewOpenMeteo(ts.URL, 100)
	d, err := om.DailyTemps(context.Background(), domain.Coords{Lat: 21.0365, Lon: -86.8771}, "2023-08-01", "2024-08-10")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(d.Highs) != 3 || d.Highs[1] != nil || *d.Highs[2] != 91.3 {
		t.Fatalf("unexpected highs: %+v", d.Highs)
	}
	if len(d.Lows) != 3 || d.Lows[2] != nil || *d.Lows[0] != 77 {
		t.Fatalf("unexpected lows: %+v", d.Lows)
	}
}

func TestOpenMeteo_MissingDaily(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false}`))
	}))
	defer ts.Close()

	d, err := geoapi.NewOpenMeteo(ts.URL, 100).DailyTemps(context.Background(), domain.Coords{}, "a", "b")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(d.Highs) != 0 || len(d.Lows) != 0 {
		t.Fatalf("expected empty series, got %+v", d)
	}
}
