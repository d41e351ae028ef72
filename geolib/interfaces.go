package geolib

import "net/http"

// HTTPClient is a contract for HTTP transports used by Client. The default
// implementation is produced by NewHTTPClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger receives diagnostic events from the client. The default logger is
// a no-op; binaries are expected to bring their own implementation.
type Logger interface {
	RequestSent(endpoint, url string)
	RequestError(endpoint string, err error)
}

type nopLogger struct{}

func (nopLogger) RequestSent(string, string) {}

func (nopLogger) RequestError(string, error) {}
