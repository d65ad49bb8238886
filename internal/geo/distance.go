// Package geo holds the distance arithmetic behind location autofill.
package geo

import "math"

// EarthRadiusMiles is the mean earth radius used by Haversine.
const EarthRadiusMiles = 3959

const (
	driveMPH  = 45
	flightMPH = 500
)

var (
	Houston = Point{Lat: 29.7604, Lon: -95.3698}
	Boston  = Point{Lat: 42.3601, Lon: -71.0589}
)

type Point struct{ Lat, Lon float64 }

// Haversine returns the great-circle distance in miles.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// Between is Haversine over two points.
func Between(a, b Point) float64 { return Haversine(a.Lat, a.Lon, b.Lat, b.Lon) }

// NearestAirport scans Airports in order; a later entry replaces the current
// best only when strictly closer.
func NearestAirport(lat, lon float64) (Airport, float64) {
	best := Airports[0]
	min := Haversine(lat, lon, best.Lat, best.Lon)
	for _, a := range Airports[1:] {
		if d := Haversine(lat, lon, a.Lat, a.Lon); d < min {
			best, min = a, d
		}
	}
	return best, min
}

// EstimateDriveTime converts miles to whole minutes at 45 mph.
func EstimateDriveTime(miles float64) int {
	return int(RoundHalfUp(miles / driveMPH * 60))
}

// EstimateFlightDuration converts miles to hours at 500 mph.
func EstimateFlightDuration(miles float64) float64 {
	return miles / flightMPH
}

// RoundHalfUp rounds .5 toward +Inf.
func RoundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }

// RoundTenth rounds to one decimal place.
func RoundTenth(x float64) float64 { return RoundHalfUp(x*10) / 10 }

func rad(deg float64) float64 { return deg * math.Pi / 180 }
