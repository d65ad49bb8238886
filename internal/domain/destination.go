package domain

import "time"

type DestinationType string

const (
	TypeResort         DestinationType = "RESORT"
	TypeVacationRental DestinationType = "VACATION_RENTAL"
)

func (t DestinationType) Valid() bool {
	return t == TypeResort || t == TypeVacationRental
}

type PriceRange string

const (
	PriceBudget    PriceRange = "BUDGET"
	PriceModerate  PriceRange = "MODERATE"
	PriceExpensive PriceRange = "EXPENSIVE"
	PriceLuxury    PriceRange = "LUXURY"
)

func (p PriceRange) Valid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceExpensive, PriceLuxury:
		return true
	}
	return false
}

// Destination is a proposed trip location. Nil pointers are stored as NULL.
type Destination struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        DestinationType `json:"type"`
	ImageURL    *string         `json:"imageUrl"`
	PropertyURL *string         `json:"propertyUrl"`
	Notes       *string         `json:"notes"`

	AirportCode              *string  `json:"airportCode"`
	DistanceFromAirportMiles *float64 `json:"distanceFromAirportMiles"`
	DriveTimeFromAirportMin  *int     `json:"driveTimeFromAirportMin"`
	AvgHighTempF             *float64 `json:"avgHighTempF"`
	AvgLowTempF              *float64 `json:"avgLowTempF"`
	WeatherSummary           *string  `json:"weatherSummary"`

	NightlyCostTotalUsd     *float64 `json:"nightlyCostTotalUsd"`
	NightlyCostPerPersonUsd *float64 `json:"nightlyCostPerPersonUsd"`

	DistanceFromHoustonMiles      *float64 `json:"distanceFromHoustonMiles"`
	FlightDurationHours           *float64 `json:"flightDurationHours"`
	DistanceFromBostonMiles       *float64 `json:"distanceFromBostonMiles"`
	FlightDurationFromBostonHours *float64 `json:"flightDurationFromBostonHours"`

	Capacity       *int        `json:"capacity"`
	PriceRange     *PriceRange `json:"priceRange"`
	IsAllInclusive *bool       `json:"isAllInclusive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DestinationView is a destination enriched with per-caller aggregates.
type DestinationView struct {
	Destination
	VoteCount    int  `json:"voteCount"`
	CommentCount int  `json:"commentCount"`
	HasVoted     bool `json:"hasVoted"`
}

type DestinationsQuery struct {
	VoterID string
	Sort    string // "" (newest first) | votes | name
}
