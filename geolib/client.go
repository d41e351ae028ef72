package geolib

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Client talks to the GeoNames JSON web services. Build one with New, tune
// it with SetOptions and call endpoints either through Invoke or through the
// typed per-endpoint methods.
//
// A Client must not be shared between goroutines: LastTotalResultsCount and
// LastRequestedURL describe the most recent call and would race.
type Client struct {
	options  Options
	logger   Logger
	limiter  *rate.Limiter
	failover failover

	lastTotalResultsCount int
	hasTotalResultsCount  bool
	lastRequestedURL      string
	hasRequestedURL       bool
}

// New builds a client for the given account. An empty token means the free
// service tier. The extra options overlay the username and token before
// validation, so they may override either of them.
func New(username, token string, options map[string]interface{}) (*Client, error) {
	seed := map[string]interface{}{
		OptionUsername: username,
	}

	if token != "" {
		seed[OptionToken] = token
	}

	for key, value := range options {
		seed[key] = value
	}

	merged, err := mergeOptions(defaultOptions(), seed)
	if err != nil {
		return nil, err
	}

	return &Client{
		options: merged,
		logger:  nopLogger{},
		limiter: rate.NewLimiter(rate.Inf, 0),
	}, nil
}

// SetLogger replaces the diagnostic logger. Passing nil restores the no-op
// default.
func (c *Client) SetLogger(logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}

	c.logger = logger
}

// SetRateLimit caps outgoing requests at one per interval with the given
// burst. The web service enforces hourly and daily credit limits, so a cap
// on the client side keeps long batch runs within them. A non-positive
// interval removes the cap.
func (c *Client) SetRateLimit(interval time.Duration, burst int) {
	if interval <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)

		return
	}

	c.limiter = rate.NewLimiter(rate.Every(interval), burst)
}

// SetOptions validates partial against the recognized option set and merges
// it over the current configuration, input values winning. On any error the
// stored configuration is left untouched.
func (c *Client) SetOptions(partial map[string]interface{}) (Options, error) {
	merged, err := mergeOptions(c.options, partial)
	if err != nil {
		return Options{}, err
	}

	c.options = merged

	return merged, nil
}

// Options returns a snapshot of the current configuration.
func (c *Client) Options() Options {
	return c.options
}

// Option returns a single configuration value by its option key.
func (c *Client) Option(key string) (interface{}, error) {
	switch key {
	case OptionUsername:
		return c.options.Username, nil
	case OptionToken:
		return c.options.Token, nil
	case OptionAPIURL:
		return c.options.APIURL, nil
	case OptionFallbackAPIURL:
		return c.options.FallbackAPIURL, nil
	case OptionConnectTimeoutSeconds:
		return c.options.ConnectTimeoutSeconds, nil
	case OptionFallbackTriggerCount:
		return c.options.FallbackTriggerCount, nil
	}

	return nil, &InvalidOptionError{Key: key, Reason: "is invalid"}
}

// ConnectTimeout returns the connect timeout in seconds. Zero means the
// client waits indefinitely.
func (c *Client) ConnectTimeout() int {
	return c.options.ConnectTimeoutSeconds
}

func (c *Client) SetConnectTimeout(seconds int) {
	c.options.ConnectTimeoutSeconds = seconds
}

// LastTotalResultsCount reports the total match count of the most recent
// call, usually larger than the returned page. The second value is false if
// the last call failed or its response carried no countable payload.
func (c *Client) LastTotalResultsCount() (int, bool) {
	return c.lastTotalResultsCount, c.hasTotalResultsCount
}

// LastRequestedURL reports the URL of the most recent call. It is recorded
// before the request is issued, so it reflects the attempt even if the
// request itself failed.
func (c *Client) LastRequestedURL() (string, bool) {
	return c.lastRequestedURL, c.hasRequestedURL
}

// Invoke calls an endpoint by its registry name and returns the raw JSON of
// its unwrapped payload. The caller's params are not modified. A "type"
// parameter is dropped since only JSON is ever requested; a "proxy"
// parameter is removed from the query and used to route this one call
// through the given proxy URL.
func (c *Client) Invoke(ctx context.Context, endpoint string, params *Params) (json.RawMessage, error) {
	c.lastTotalResultsCount, c.hasTotalResultsCount = 0, false
	c.lastRequestedURL, c.hasRequestedURL = "", false

	property, ok := endpointResults[endpoint]
	if !ok {
		return nil, &UnsupportedEndpointError{Endpoint: endpoint}
	}

	params, proxyURL, err := c.normalizeParams(params)
	if err != nil {
		return nil, err
	}

	requestURL := c.failover.baseURL(c.options) + "/" + endpoint + "JSON?" + params.Encode()

	c.lastRequestedURL, c.hasRequestedURL = requestURL, true

	body, err := c.fetch(ctx, endpoint, requestURL, proxyURL)
	if err != nil {
		return nil, err
	}

	return c.unwrap(property, body)
}

// normalizeParams prepares the final parameter set for a call: it strips the
// "type" and "proxy" pseudo-parameters and injects the stored credentials.
// The stored username always wins over a caller-supplied one; an empty
// stored token is never sent.
func (c *Client) normalizeParams(params *Params) (*Params, *url.URL, error) {
	if params == nil {
		params = NewParams()
	} else {
		params = params.clone()
	}

	params.Del("type")

	var proxyURL *url.URL

	if value, ok := params.Get("proxy"); ok {
		params.Del("proxy")

		parsed, err := url.Parse(stringify(value))
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, nil, &InvalidOptionError{Key: "proxy", Reason: "is invalid"}
		}

		proxyURL = parsed
	}

	params.Set(OptionUsername, c.options.Username)

	if c.options.Token != "" {
		params.Set(OptionToken, c.options.Token)
	} else {
		params.Del(OptionToken)
	}

	return params, proxyURL, nil
}

// fetch issues a single GET over a transport session scoped to this call.
func (c *Client) fetch(ctx context.Context, endpoint, requestURL string, proxyURL *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.failover.failure()
		c.logger.RequestError(endpoint, err)

		return nil, &TransportError{Err: err}
	}

	c.logger.RequestSent(endpoint, requestURL)

	resp, err := c.transportFor(proxyURL).Do(req)
	if err != nil {
		c.failover.failure()
		c.logger.RequestError(endpoint, err)

		return nil, &TransportError{Err: err}
	}

	defer flushResponse(resp.Body)

	body, err := io.ReadAll(bufio.NewReader(resp.Body))
	if err != nil {
		c.failover.failure()
		c.logger.RequestError(endpoint, err)

		return nil, &TransportError{Err: err}
	}

	c.failover.success()

	return body, nil
}

// transportFor builds the transport session for one call. Sessions are not
// pooled between calls; the per-call proxy, if any, never outlives its call.
func (c *Client) transportFor(proxyURL *url.URL) HTTPClient {
	client := &http.Client{
		Timeout: time.Duration(c.options.ConnectTimeoutSeconds) * time.Second,
	}

	if proxyURL != nil {
		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
		}
	}

	return NewHTTPClient(client, userAgent, c.limiter)
}

// unwrap checks the response for a status envelope and extracts the payload
// the registry names for this endpoint.
func (c *Client) unwrap(property string, body []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Err: errors.New("response is not valid JSON")}
	}

	document := gjson.ParseBytes(body)

	if !document.IsObject() && !document.IsArray() {
		return nil, &DecodeError{Err: errors.New("response is not a JSON object or array")}
	}

	status := document.Get("status")
	if status.Get("message").Exists() && status.Get("value").Exists() {
		return nil, &ServiceError{
			Message: status.Get("message").String(),
			Code:    int(status.Get("value").Int()),
		}
	}

	if property != documentIsResult {
		if payload := document.Get(property); payload.Exists() {
			if total := document.Get("totalResultsCount"); total.Exists() {
				c.setTotalResultsCount(int(total.Int()))
			} else if payload.IsArray() {
				c.setTotalResultsCount(len(payload.Array()))
			}

			return json.RawMessage(payload.Raw), nil
		}
	}

	// No unwrap property, or the property is missing from the document: the
	// document itself is the payload.
	if document.IsArray() {
		c.setTotalResultsCount(len(document.Array()))
	}

	return json.RawMessage(document.Raw), nil
}

func (c *Client) setTotalResultsCount(count int) {
	c.lastTotalResultsCount = count
	c.hasTotalResultsCount = true
}

// decodeResult unmarshals an unwrapped payload into a typed value.
func decodeResult(raw json.RawMessage, target interface{}) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}
