package navdata

import "errors"

var (
	ErrUnavailable       = errors.New("nav data api unavailable")
	ErrUnexpectedStatus  = errors.New("nav data api returned unexpected status")
	ErrMalformedResponse = errors.New("malformed nav data api response")
)
