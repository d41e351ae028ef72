package geolib

import "context"

// PostalCode is a postal code record as returned by the postal code search
// endpoints. Coordinates come off the wire as numbers here, unlike toponyms.
type PostalCode struct {
	PostalCode  string  `json:"postalCode"`
	PlaceName   string  `json:"placeName"`
	CountryCode string  `json:"countryCode"`
	AdminCode1  string  `json:"adminCode1"`
	AdminName1  string  `json:"adminName1"`
	AdminCode2  string  `json:"adminCode2"`
	AdminName2  string  `json:"adminName2"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Distance    string  `json:"distance"`
}

// PostalCodePlace is a record of the postal code lookup endpoint, which uses
// lowercase wire names.
type PostalCodePlace struct {
	PostalCode  string  `json:"postalcode"`
	PlaceName   string  `json:"placeName"`
	CountryCode string  `json:"countryCode"`
	AdminCode1  string  `json:"adminCode1"`
	AdminName1  string  `json:"adminName1"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// PostalCodeCountry describes postal code coverage of one country.
type PostalCodeCountry struct {
	CountryCode    string `json:"countryCode"`
	CountryName    string `json:"countryName"`
	MinPostalCode  string `json:"minPostalCode"`
	MaxPostalCode  string `json:"maxPostalCode"`
	NumPostalCodes int    `json:"numPostalCodes"`
}

// PostalCodeSearchRequest describes a postal code search. Set either
// PostalCode/PostalCodeStartsWith or PlaceName.
type PostalCodeSearchRequest struct {
	PostalCode           string
	PostalCodeStartsWith string
	PlaceName            string

	Country []string
	MaxRows int
}

func (r PostalCodeSearchRequest) params() *Params {
	params := NewParams()

	if r.PostalCode != "" {
		params.Set("postalcode", r.PostalCode)
	}

	if r.PostalCodeStartsWith != "" {
		params.Set("postalcode_startsWith", r.PostalCodeStartsWith)
	}

	if r.PlaceName != "" {
		params.Set("placename", r.PlaceName)
	}

	if len(r.Country) > 0 {
		params.Set("country", r.Country)
	}

	if r.MaxRows > 0 {
		params.Set("maxRows", r.MaxRows)
	}

	return params
}

// PostalCodeSearch returns the postal codes matching the request.
func (c *Client) PostalCodeSearch(ctx context.Context, req PostalCodeSearchRequest) ([]PostalCode, error) {
	raw, err := c.Invoke(ctx, "postalCodeSearch", req.params())
	if err != nil {
		return nil, err
	}

	var codes []PostalCode

	if err := decodeResult(raw, &codes); err != nil {
		return nil, err
	}

	return codes, nil
}

// PostalCodeLookup returns the places using a postal code in a country.
func (c *Client) PostalCodeLookup(ctx context.Context, postalCode, country string) ([]PostalCodePlace, error) {
	params := NewParams().Set("postalcode", postalCode)

	if country != "" {
		params.Set("country", country)
	}

	raw, err := c.Invoke(ctx, "postalCodeLookup", params)
	if err != nil {
		return nil, err
	}

	var places []PostalCodePlace

	if err := decodeResult(raw, &places); err != nil {
		return nil, err
	}

	return places, nil
}

// FindNearbyPostalCodes returns the postal codes closest to a point.
func (c *Client) FindNearbyPostalCodes(ctx context.Context, req FindNearbyRequest) ([]PostalCode, error) {
	raw, err := c.Invoke(ctx, "findNearbyPostalCodes", req.params())
	if err != nil {
		return nil, err
	}

	var codes []PostalCode

	if err := decodeResult(raw, &codes); err != nil {
		return nil, err
	}

	return codes, nil
}

// PostalCodeCountryInfo lists the countries postal code search is available
// for.
func (c *Client) PostalCodeCountryInfo(ctx context.Context) ([]PostalCodeCountry, error) {
	raw, err := c.Invoke(ctx, "postalCodeCountryInfo", NewParams())
	if err != nil {
		return nil, err
	}

	var countries []PostalCodeCountry

	if err := decodeResult(raw, &countries); err != nil {
		return nil, err
	}

	return countries, nil
}
