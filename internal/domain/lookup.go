package domain

type Coords struct{ Lat, Lon float64 }

// LookupResult bundles the autofill values for a destination address.
// Weather fields stay nil when the archive had nothing to offer.
type LookupResult struct {
	AirportCode                   string  `json:"airportCode"`
	DistanceFromAirportMiles      float64 `json:"distanceFromAirportMiles"`
	DriveTimeFromAirportMin       int     `json:"driveTimeFromAirportMin"`
	AvgHighTempF                  *int    `json:"avgHighTempF"`
	AvgLowTempF                   *int    `json:"avgLowTempF"`
	WeatherSummary                *string `json:"weatherSummary"`
	DistanceFromHoustonMiles      float64 `json:"distanceFromHoustonMiles"`
	FlightDurationHours           float64 `json:"flightDurationHours"`
	DistanceFromBostonMiles       float64 `json:"distanceFromBostonMiles"`
	FlightDurationFromBostonHours float64 `json:"flightDurationFromBostonHours"`
}

// DailyTemps holds the raw archive series; nil entries are missing samples.
type DailyTemps struct {
	Highs []*float64
	Lows  []*float64
}
