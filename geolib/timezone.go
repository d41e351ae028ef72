package geolib

import "context"

// Timezone describes the timezone at a point. Offsets are hours relative to
// UTC; Time, Sunrise and Sunset are local wall-clock timestamps rendered by
// the web service.
type Timezone struct {
	TimezoneID  string  `json:"timezoneId"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	GMTOffset   float64 `json:"gmtOffset"`
	DSTOffset   float64 `json:"dstOffset"`
	RawOffset   float64 `json:"rawOffset"`
	Time        string  `json:"time"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// TimezoneAt returns the timezone at a point.
func (c *Client) TimezoneAt(ctx context.Context, lat, lng float64) (*Timezone, error) {
	raw, err := c.Invoke(ctx, "timezone", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	timezone := &Timezone{}

	if err := decodeResult(raw, timezone); err != nil {
		return nil, err
	}

	return timezone, nil
}
