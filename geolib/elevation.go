package geolib

import "context"

type elevationResponse struct {
	Srtm3     *int `json:"srtm3"`
	Srtm1     *int `json:"srtm1"`
	Astergdem *int `json:"astergdem"`
	Gtopo30   *int `json:"gtopo30"`
}

// Srtm3 returns the SRTM3 elevation in meters at a point. Ocean areas are
// reported as -32768 by the web service.
func (c *Client) Srtm3(ctx context.Context, lat, lng float64) (int, error) {
	return c.elevation(ctx, "srtm3", lat, lng)
}

// Srtm1 returns the SRTM1 elevation in meters at a point.
func (c *Client) Srtm1(ctx context.Context, lat, lng float64) (int, error) {
	return c.elevation(ctx, "srtm1", lat, lng)
}

// Astergdem returns the ASTER GDEM elevation in meters at a point.
func (c *Client) Astergdem(ctx context.Context, lat, lng float64) (int, error) {
	return c.elevation(ctx, "astergdem", lat, lng)
}

// Gtopo30 returns the GTOPO30 elevation in meters at a point.
func (c *Client) Gtopo30(ctx context.Context, lat, lng float64) (int, error) {
	return c.elevation(ctx, "gtopo30", lat, lng)
}

func (c *Client) elevation(ctx context.Context, endpoint string, lat, lng float64) (int, error) {
	raw, err := c.Invoke(ctx, endpoint, positionParams(lat, lng))
	if err != nil {
		return 0, err
	}

	response := elevationResponse{}

	if err := decodeResult(raw, &response); err != nil {
		return 0, err
	}

	for _, value := range []*int{response.Srtm3, response.Srtm1, response.Astergdem, response.Gtopo30} {
		if value != nil {
			return *value, nil
		}
	}

	return 0, &DecodeError{Err: errMissingElevation}
}
