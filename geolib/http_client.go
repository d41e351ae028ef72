package geolib

import (
	"net/http"

	"golang.org/x/time/rate"
)

const userAgent = "geonamer (https://github.com/geonames-go/geonamer)"

type httpClient struct {
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")

	return h.client.Do(req)
}

// NewHTTPClient wraps a net/http client: it sets a user agent, asks for JSON
// responses and applies a client-side rate limiter.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a meaning of
// rate limiter parameters.
func NewHTTPClient(client *http.Client, userAgent string, limiter *rate.Limiter) HTTPClient {
	return httpClient{
		userAgent: userAgent,
		client:    client,
		limiter:   limiter,
	}
}
