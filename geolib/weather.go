package geolib

import "context"

// WeatherObservation is a METAR weather report from a single station. The
// web service mixes strings and numbers here; the struct mirrors the wire.
type WeatherObservation struct {
	ICAO             string  `json:"ICAO"`
	StationName      string  `json:"stationName"`
	Observation      string  `json:"observation"`
	Datetime         string  `json:"datetime"`
	CountryCode      string  `json:"countryCode"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Elevation        float64 `json:"elevation"`
	Temperature      string  `json:"temperature"`
	DewPoint         string  `json:"dewPoint"`
	Humidity         float64 `json:"humidity"`
	Clouds           string  `json:"clouds"`
	WeatherCondition string  `json:"weatherCondition"`
	WindDirection    float64 `json:"windDirection"`
	WindSpeed        string  `json:"windSpeed"`
}

// Earthquake is a single recorded earthquake.
type Earthquake struct {
	EqID      string  `json:"eqid"`
	Source    string  `json:"src"`
	Datetime  string  `json:"datetime"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Depth     float64 `json:"depth"`
	Magnitude float64 `json:"magnitude"`
}

// BoundsRequest describes a bounding box query. North and South are
// latitudes, East and West are longitudes.
type BoundsRequest struct {
	North float64
	South float64
	East  float64
	West  float64

	MaxRows int
}

func (r BoundsRequest) params() *Params {
	params := NewParams().
		Set("north", r.North).
		Set("south", r.South).
		Set("east", r.East).
		Set("west", r.West)

	if r.MaxRows > 0 {
		params.Set("maxRows", r.MaxRows)
	}

	return params
}

// Weather returns the weather stations reporting inside a bounding box.
func (c *Client) Weather(ctx context.Context, req BoundsRequest) ([]WeatherObservation, error) {
	raw, err := c.Invoke(ctx, "weather", req.params())
	if err != nil {
		return nil, err
	}

	var observations []WeatherObservation

	if err := decodeResult(raw, &observations); err != nil {
		return nil, err
	}

	return observations, nil
}

// WeatherIcao returns the most recent report of one weather station.
func (c *Client) WeatherIcao(ctx context.Context, icao string) (*WeatherObservation, error) {
	raw, err := c.Invoke(ctx, "weatherIcao", NewParams().Set("ICAO", icao))
	if err != nil {
		return nil, err
	}

	observation := &WeatherObservation{}

	if err := decodeResult(raw, observation); err != nil {
		return nil, err
	}

	return observation, nil
}

// FindNearbyWeather returns the report of the weather station closest to a
// point.
func (c *Client) FindNearbyWeather(ctx context.Context, lat, lng float64) (*WeatherObservation, error) {
	raw, err := c.Invoke(ctx, "findNearbyWeather", positionParams(lat, lng))
	if err != nil {
		return nil, err
	}

	observation := &WeatherObservation{}

	if err := decodeResult(raw, observation); err != nil {
		return nil, err
	}

	return observation, nil
}

// Earthquakes returns the recorded earthquakes inside a bounding box.
func (c *Client) Earthquakes(ctx context.Context, req BoundsRequest) ([]Earthquake, error) {
	raw, err := c.Invoke(ctx, "earthquakes", req.params())
	if err != nil {
		return nil, err
	}

	var earthquakes []Earthquake

	if err := decodeResult(raw, &earthquakes); err != nil {
		return nil, err
	}

	return earthquakes, nil
}
