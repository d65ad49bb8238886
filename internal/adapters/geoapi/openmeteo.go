package geoapi

import (
	"context"
	"net/url"
	"strconv"

	"tripvote/internal/domain"
)

// OpenMeteo reads daily temperature history from the Open-Meteo archive.
type OpenMeteo struct{ c *client }

func NewOpenMeteo(base string, rps int) *OpenMeteo {
	return &OpenMeteo{c: newClient("open-meteo", base, rps)}
}

type archiveResponse struct {
	Daily *struct {
		Max []*float64 `json:"temperature_2m_max"`
		Min []*float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (o *OpenMeteo) DailyTemps(ctx context.Context, c domain.Coords, startDate, endDate string) (domain.DailyTemps, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")

	var out archiveResponse
	if err := o.c.getJSON(ctx, o.c.base+"/archive?"+q.Encode(), &out); err != nil {
		return domain.DailyTemps{}, err
	}
	if out.Daily == nil {
		return domain.DailyTemps{}, nil
	}
	return domain.DailyTemps{Highs: out.Daily.Max, Lows: out.Daily.Min}, nil
}
