package geolib

import (
	"errors"
	"strconv"
)

var errMissingElevation = errors.New("response carries no elevation value")

// CodeUnsupportedEndpoint is the code carried by UnsupportedEndpointError.
// It is negative so it can never collide with a code reported by the web
// service inside a status envelope.
const CodeUnsupportedEndpoint = -1

// Error codes the GeoNames web service is known to report inside the status
// envelope. The service treats this as an open enumeration, so a ServiceError
// may carry a code that is not listed here.
const (
	CodeAuthorizationException = 10
	CodeRecordDoesNotExist     = 11
	CodeOtherError             = 12
	CodeDatabaseTimeout        = 13
	CodeInvalidParameter       = 14
	CodeNoResultFound          = 15
	CodePostalCodeNotFound     = 17
	CodeDailyLimitExceeded     = 18
	CodeHourlyLimitExceeded    = 19
	CodeWeeklyLimitExceeded    = 20
	CodeInvalidInput           = 21
	CodeServerOverloaded       = 22
	CodeServiceNotImplemented  = 23
	CodeRadiusTooLarge         = 24
	CodeMaxRowsTooLarge        = 27
)

// InvalidOptionError is returned if an option key is unknown, has a value of
// a wrong type, or a required option became empty after a merge. An option
// merge which fails with this error is never partially applied.
type InvalidOptionError struct {
	Key    string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return e.Key + " " + e.Reason
}

// UnsupportedEndpointError is returned if an endpoint name is not present in
// the endpoint registry. Lookups are exact and case-sensitive.
type UnsupportedEndpointError struct {
	Endpoint string
}

func (e *UnsupportedEndpointError) Error() string {
	return "unsupported endpoint: " + e.Endpoint
}

// Code returns CodeUnsupportedEndpoint. It exists so this error is
// distinguishable from any ServiceError by code alone.
func (e *UnsupportedEndpointError) Code() int {
	return CodeUnsupportedEndpoint
}

// ServiceError is an application-level failure reported by the web service
// inside an otherwise well-formed response.
type ServiceError struct {
	Message string
	Code    int
}

func (e *ServiceError) Error() string {
	return e.Message + " (error " + strconv.Itoa(e.Code) + ")"
}

// DecodeError is returned if a response body is not valid JSON, is not a
// structured JSON value, or does not match the shape a typed call expects.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "cannot decode a response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError wraps a network-level failure, including timeouts. The
// underlying error is kept reachable via Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
