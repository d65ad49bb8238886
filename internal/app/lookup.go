package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"tripvote/internal/domain"
	"tripvote/internal/geo"
)

// Early-August window across two seasons of the weather archive.
const (
	weatherStart = "2023-08-01"
	weatherEnd   = "2024-08-10"
)

const (
	summaryHot  = "Hot and sunny in early August, typical of warm climate destinations."
	summaryWarm = "Warm and pleasant in early August, ideal for outdoor activities."
	summaryMild = "Mild temperatures in early August, comfortable climate."
	summaryCool = "Cool climate in early August, bring layers for comfort."
)

// lookupTimeout bounds a shared lookup, which outlives any single caller.
const lookupTimeout = 45 * time.Second

type LookupService struct {
	geocoder domain.Geocoder
	weather  domain.WeatherArchive
	cache    domain.Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewLookupService wires the autofill lookup. cache may be nil.
func NewLookupService(g domain.Geocoder, w domain.WeatherArchive, c domain.Cache, ttl time.Duration) *LookupService {
	return &LookupService{geocoder: g, weather: w, cache: c, cacheTTL: ttl}
}

func (s *LookupService) Lookup(ctx context.Context, address string) (domain.LookupResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.LookupResult{}, domain.Invalid("Address is required.")
	}

	key := lookupKey(address)
	var res domain.LookupResult
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &res); ok {
			return res, nil
		}
	}

	ch := s.group.DoChan(key, func() (any, error) {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return s.lookup(sctx, address)
	})
	select {
	case <-ctx.Done():
		return domain.LookupResult{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return domain.LookupResult{}, r.Err
		}
		res = r.Val.(domain.LookupResult)
	}

	// Partial results are not cached so a transient weather outage heals.
	if s.cache != nil && res.AvgHighTempF != nil {
		if err := s.cache.Set(ctx, key, res, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Msg("lookup cache set failed")
		}
	}
	return res, nil
}

func (s *LookupService) lookup(ctx context.Context, address string) (domain.LookupResult, error) {
	c, err := s.geocoder.Geocode(ctx, address)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.LookupResult{}, domain.NotFound("Address not found. Please try a different address.")
	}
	if err != nil {
		log.Warn().Err(err).Msg("geocode failed")
		return domain.LookupResult{}, domain.Upstream("Failed to geocode address.")
	}

	res := distances(c)

	temps, err := s.weather.DailyTemps(ctx, c, weatherStart, weatherEnd)
	if err != nil {
		log.Warn().Err(err).Float64("lat", c.Lat).Float64("lon", c.Lon).Msg("weather lookup failed, returning partial result")
		return res, nil
	}
	res.AvgHighTempF, res.AvgLowTempF, res.WeatherSummary = summarizeWeather(temps)
	return res, nil
}

// distances fills every non-weather field for coordinate c.
func distances(c domain.Coords) domain.LookupResult {
	airport, toAirport := geo.NearestAirport(c.Lat, c.Lon)
	p := geo.Point{Lat: c.Lat, Lon: c.Lon}
	houston := geo.Between(geo.Houston, p)
	boston := geo.Between(geo.Boston, p)

	return domain.LookupResult{
		AirportCode:                   airport.Code,
		DistanceFromAirportMiles:      geo.RoundHalfUp(toAirport),
		DriveTimeFromAirportMin:       geo.EstimateDriveTime(toAirport),
		DistanceFromHoustonMiles:      geo.RoundHalfUp(houston),
		FlightDurationHours:           geo.RoundTenth(geo.EstimateFlightDuration(houston)),
		DistanceFromBostonMiles:       geo.RoundHalfUp(boston),
		FlightDurationFromBostonHours: geo.RoundTenth(geo.EstimateFlightDuration(boston)),
	}
}

// summarizeWeather averages the non-null samples and bands the average high.
func summarizeWeather(t domain.DailyTemps) (high, low *int, summary *string) {
	high = roundedMean(t.Highs)
	low = roundedMean(t.Lows)
	if high == nil {
		return high, low, nil
	}
	var s string
	switch {
	case *high > 85:
		s = summaryHot
	case *high > 70:
		s = summaryWarm
	case *high > 50:
		s = summaryMild
	default:
		s = summaryCool
	}
	return high, low, &s
}

func roundedMean(xs []*float64) *int {
	var sum float64
	var n int
	for _, x := range xs {
		if x != nil {
			sum += *x
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := int(geo.RoundHalfUp(sum / float64(n)))
	return &m
}

func lookupKey(address string) string {
	sum := sha1.Sum([]byte(strings.ToLower(address)))
	return "lookup:" + hex.EncodeToString(sum[:])
}
