package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"tripvote/internal/domain"
)

/********** tiny helpers **********/

// optStr returns the trimmed string at key, or nil when absent, blank or
// not a string.
func optStr(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// getFloatFlexible accepts a JSON number or numeric text; anything else,
// including blank text, is nil.
func getFloatFlexible(m map[string]any, key string) *float64 {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		x, err := v.Float64()
		if err != nil {
			return nil
		}
		f = x
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = x
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// getIntFlexible is getFloatFlexible truncated toward zero.
func getIntFlexible(m map[string]any, key string) *int {
	f := getFloatFlexible(m, key)
	if f == nil {
		return nil
	}
	i := int(math.Trunc(*f))
	return &i
}

func getBoolFlexible(m map[string]any, key string) *bool {
	switch v := m[key].(type) {
	case bool:
		return &v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return &b
		}
	}
	return nil
}

/********** destination mapper **********/

// mapDestination validates and normalizes a client payload. ID and
// timestamps are left for the caller.
func mapDestination(p map[string]any) (domain.Destination, error) {
	name := optStr(p, "name")
	typ := optStr(p, "type")
	if name == nil || typ == nil {
		return domain.Destination{}, domain.Invalid("Name and type are required.")
	}
	dt := domain.DestinationType(*typ)
	if !dt.Valid() {
		return domain.Destination{}, domain.Invalid("Invalid destination type.")
	}

	var price *domain.PriceRange
	if s := optStr(p, "priceRange"); s != nil {
		pr := domain.PriceRange(*s)
		if !pr.Valid() {
			return domain.Destination{}, domain.Invalid("Invalid price range.")
		}
		price = &pr
	}

	return domain.Destination{
		Name:        *name,
		Type:        dt,
		ImageURL:    optStr(p, "imageUrl"),
		PropertyURL: optStr(p, "propertyUrl"),
		Notes:       optStr(p, "notes"),

		AirportCode:              optStr(p, "airportCode"),
		DistanceFromAirportMiles: getFloatFlexible(p, "distanceFromAirportMiles"),
		DriveTimeFromAirportMin:  getIntFlexible(p, "driveTimeFromAirportMin"),
		AvgHighTempF:             getFloatFlexible(p, "avgHighTempF"),
		AvgLowTempF:              getFloatFlexible(p, "avgLowTempF"),
		WeatherSummary:           optStr(p, "weatherSummary"),

		NightlyCostTotalUsd:     getFloatFlexible(p, "nightlyCostTotalUsd"),
		NightlyCostPerPersonUsd: getFloatFlexible(p, "nightlyCostPerPersonUsd"),

		DistanceFromHoustonMiles:      getFloatFlexible(p, "distanceFromHoustonMiles"),
		FlightDurationHours:           getFloatFlexible(p, "flightDurationHours"),
		DistanceFromBostonMiles:       getFloatFlexible(p, "distanceFromBostonMiles"),
		FlightDurationFromBostonHours: getFloatFlexible(p, "flightDurationFromBostonHours"),

		Capacity:       getIntFlexible(p, "capacity"),
		PriceRange:     price,
		IsAllInclusive: getBoolFlexible(p, "isAllInclusive"),
	}, nil
}
