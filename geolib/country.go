package geolib

import "context"

// CountryInfo is a country metadata record. Numeric-looking fields such as
// Population and AreaInSqKm come off the wire as strings.
type CountryInfo struct {
	GeonameID        int     `json:"geonameId"`
	CountryCode      string  `json:"countryCode"`
	CountryName      string  `json:"countryName"`
	IsoAlpha3        string  `json:"isoAlpha3"`
	IsoNumeric       string  `json:"isoNumeric"`
	FipsCode         string  `json:"fipsCode"`
	Capital          string  `json:"capital"`
	ContinentCode    string  `json:"continent"`
	ContinentName    string  `json:"continentName"`
	Languages        string  `json:"languages"`
	CurrencyCode     string  `json:"currencyCode"`
	Population       string  `json:"population"`
	AreaInSqKm       string  `json:"areaInSqKm"`
	North            float64 `json:"north"`
	South            float64 `json:"south"`
	East             float64 `json:"east"`
	West             float64 `json:"west"`
	PostalCodeFormat string  `json:"postalCodeFormat"`
}

// CountryCode names the country a point belongs to.
type CountryCode struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Languages   string `json:"languages"`
	Distance    string `json:"distance"`
}

// CountrySubdivision names the administrative subdivision at a point.
type CountrySubdivision struct {
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	AdminCode1  string  `json:"adminCode1"`
	AdminName1  string  `json:"adminName1"`
	Distance    float64 `json:"distance"`
}

// Ocean names the ocean or sea at a point.
type Ocean struct {
	GeonameID int    `json:"geonameId"`
	Name      string `json:"name"`
	Distance  string `json:"distance"`
}

// CountryInfo returns metadata for the given ISO country codes, or for every
// country if none are given.
func (c *Client) CountryInfo(ctx context.Context, countries ...string) ([]CountryInfo, error) {
	params := NewParams()

	if len(countries) > 0 {
		params.Set("country", countries)
	}

	raw, err := c.Invoke(ctx, "countryInfo", params)
	if err != nil {
		return nil, err
	}

	var infos []CountryInfo

	if err := decodeResult(raw, &infos); err != nil {
		return nil, err
	}

	return infos, nil
}

// CountryCodeAt returns the country a point belongs to.
func (c *Client) CountryCodeAt(ctx context.Context, lat, lng float64) (*CountryCode, error) {
	raw, err := c.Invoke(ctx, "countryCode", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	code := &CountryCode{}

	if err := decodeResult(raw, code); err != nil {
		return nil, err
	}

	return code, nil
}

// CountrySubdivisionAt returns the administrative subdivision at a point.
func (c *Client) CountrySubdivisionAt(ctx context.Context, lat, lng float64) (*CountrySubdivision, error) {
	raw, err := c.Invoke(ctx, "countrySubdivision", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	subdivision := &CountrySubdivision{}

	if err := decodeResult(raw, subdivision); err != nil {
		return nil, err
	}

	return subdivision, nil
}

// OceanAt returns the ocean or sea at a point.
func (c *Client) OceanAt(ctx context.Context, lat, lng float64) (*Ocean, error) {
	raw, err := c.Invoke(ctx, "ocean", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	ocean := &Ocean{}

	if err := decodeResult(raw, ocean); err != nil {
		return nil, err
	}

	return ocean, nil
}
