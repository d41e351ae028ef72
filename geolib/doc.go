// This package implements a client for the GeoNames JSON web services.
//
// geolib is the core of the geonamer project. You can treat the rest of
// the repository as an _example_ on how to use this library: how to pass
// credentials, how to pick endpoints, how to render results.
//
// Client is a main entity of the geolib. This struct contains all logic
// related to talking to the web service: which endpoints are callable, how
// to merge and validate options, how to encode query strings, how to unwrap
// response envelopes and surface service-reported errors.
//
// A Client accepts an endpoint name with parameters and returns the raw
// payload of that endpoint, or a typed value through one of the per-endpoint
// methods. It is not safe for concurrent use: the diagnostic accessors
// LastTotalResultsCount and LastRequestedURL describe the most recent call
// only.
package geolib
