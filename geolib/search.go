package geolib

import "context"

// SearchRequest describes a full text search of toponyms. Exactly one of
// Query, Name, NameEquals or NameStartsWith should be set; the remaining
// fields narrow the result set. Zero values are not sent.
type SearchRequest struct {
	Query          string
	Name           string
	NameEquals     string
	NameStartsWith string

	Country      []string
	CountryBias  string
	Continent    string
	AdminCode1   string
	FeatureClass []string
	FeatureCode  []string

	Lang     string
	Fuzzy    float64
	MaxRows  int
	StartRow int
}

func (r SearchRequest) params() *Params {
	params := NewParams()

	if r.Query != "" {
		params.Set("q", r.Query)
	}

	if r.Name != "" {
		params.Set("name", r.Name)
	}

	if r.NameEquals != "" {
		params.Set("name_equals", r.NameEquals)
	}

	if r.NameStartsWith != "" {
		params.Set("name_startsWith", r.NameStartsWith)
	}

	if len(r.Country) > 0 {
		params.Set("country", r.Country)
	}

	if r.CountryBias != "" {
		params.Set("countryBias", r.CountryBias)
	}

	if r.Continent != "" {
		params.Set("continentCode", r.Continent)
	}

	if r.AdminCode1 != "" {
		params.Set("adminCode1", r.AdminCode1)
	}

	if len(r.FeatureClass) > 0 {
		params.Set("featureClass", r.FeatureClass)
	}

	if len(r.FeatureCode) > 0 {
		params.Set("featureCode", r.FeatureCode)
	}

	if r.Lang != "" {
		params.Set("lang", r.Lang)
	}

	if r.Fuzzy > 0 {
		params.Set("fuzzy", r.Fuzzy)
	}

	if r.MaxRows > 0 {
		params.Set("maxRows", r.MaxRows)
	}

	if r.StartRow > 0 {
		params.Set("startRow", r.StartRow)
	}

	return params
}

// Search runs a full text search of toponyms. The returned page holds at
// most MaxRows records; LastTotalResultsCount reports the full match count.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Geoname, error) {
	raw, err := c.Invoke(ctx, "search", req.params())
	if err != nil {
		return nil, err
	}

	var names []Geoname

	if err := decodeResult(raw, &names); err != nil {
		return nil, err
	}

	return names, nil
}
