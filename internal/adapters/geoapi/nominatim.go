package geoapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"tripvote/internal/domain"
)

// Nominatim geocodes free-text addresses via OpenStreetMap.
type Nominatim struct{ c *client }

func NewNominatim(base string, rps int) *Nominatim {
	return &Nominatim{c: newClient("nominatim", base, rps)}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (domain.Coords, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	var places []place
	if err := n.c.getJSON(ctx, n.c.base+"/search?"+q.Encode(), &places); err != nil {
		return domain.Coords{}, err
	}
	if len(places) == 0 {
		return domain.Coords{}, domain.ErrNotFound
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coords{}, fmt.Errorf("nominatim: bad lat %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coords{}, fmt.Errorf("nominatim: bad lon %q: %w", places[0].Lon, err)
	}
	return domain.Coords{Lat: lat, Lon: lon}, nil
}
