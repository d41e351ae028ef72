package geolib

import "context"

// FindNearbyRequest describes a radial lookup around a point. Radius is in
// kilometers; zero leaves the choice to the web service.
type FindNearbyRequest struct {
	Lat    float64
	Lng    float64
	Radius float64

	FeatureClass []string
	FeatureCode  []string

	Lang    string
	MaxRows int
}

func (r FindNearbyRequest) params() *Params {
	params := positionParams(r.Lat, r.Lng)

	if r.Radius > 0 {
		params.Set("radius", r.Radius)
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

	if r.MaxRows > 0 {
		params.Set("maxRows", r.MaxRows)
	}

	return params
}

// Neighbourhood is a US neighbourhood record.
type Neighbourhood struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	AdminCode1  string `json:"adminCode1"`
	AdminName1  string `json:"adminName1"`
	AdminCode2  string `json:"adminCode2"`
	AdminName2  string `json:"adminName2"`
}

// Get fetches a single toponym by its id.
func (c *Client) Get(ctx context.Context, geonameID int) (*Geoname, error) {
	raw, err := c.Invoke(ctx, "get", NewParams().Set("geonameId", geonameID))
	if err != nil {
		return nil, err
	}

	name := &Geoname{}

	if err := decodeResult(raw, name); err != nil {
		return nil, err
	}

	return name, nil
}

// FindNearby returns the toponyms closest to a point.
func (c *Client) FindNearby(ctx context.Context, req FindNearbyRequest) ([]Geoname, error) {
	return c.geonameList(ctx, "findNearby", req.params())
}

// FindNearbyPlaceName returns the populated places closest to a point.
func (c *Client) FindNearbyPlaceName(ctx context.Context, req FindNearbyRequest) ([]Geoname, error) {
	return c.geonameList(ctx, "findNearbyPlaceName", req.params())
}

// Children returns the direct administrative children of a toponym.
func (c *Client) Children(ctx context.Context, geonameID int) ([]Geoname, error) {
	return c.geonameList(ctx, "children", NewParams().Set("geonameId", geonameID))
}

// Hierarchy returns the administrative chain from the earth down to a
// toponym.
func (c *Client) Hierarchy(ctx context.Context, geonameID int) ([]Geoname, error) {
	return c.geonameList(ctx, "hierarchy", NewParams().Set("geonameId", geonameID))
}

// Siblings returns the toponyms sharing a parent with the given one.
func (c *Client) Siblings(ctx context.Context, geonameID int) ([]Geoname, error) {
	return c.geonameList(ctx, "siblings", NewParams().Set("geonameId", geonameID))
}

// Neighbours returns the neighbouring countries of the given one.
func (c *Client) Neighbours(ctx context.Context, geonameID int) ([]Geoname, error) {
	return c.geonameList(ctx, "neighbours", NewParams().Set("geonameId", geonameID))
}

// NeighbourhoodAt returns the US neighbourhood at a point.
func (c *Client) NeighbourhoodAt(ctx context.Context, lat, lng float64) (*Neighbourhood, error) {
	raw, err := c.Invoke(ctx, "neighbourhood", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	neighbourhood := &Neighbourhood{}

	if err := decodeResult(raw, neighbourhood); err != nil {
		return nil, err
	}

	return neighbourhood, nil
}

func (c *Client) geonameList(ctx context.Context, endpoint string, params *Params) ([]Geoname, error) {
	raw, err := c.Invoke(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var names []Geoname

	if err := decodeResult(raw, &names); err != nil {
		return nil, err
	}

	return names, nil
}

func positionParams(lat, lng float64) *Params {
	return NewParams().Set("lat", lat).Set("lng", lng)
}
