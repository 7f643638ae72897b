// Package navdata talks to the Nav Data Pro chart catalogue.
//
// # Overview
//
// The API is a handful of form-encoded POST endpoints answering JSON:
//
//	POST {base}/airports            sessionId, country  -> {"airports": [...]}
//	POST {base}/catalogue           sessionId, icao     -> {"catalogue": [...]}
//	POST {base}/chart               sessionId, chartId  -> {"download_id": ...}
//	POST {base}/download/{id}                           -> raw document bytes
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// net/http. ResolveTargets builds the merged airport set for a list of
// country filters.
//
// # Error Handling
//
// Failures map to sentinel errors that callers match with errors.Is:
// ErrUnavailable (transport), ErrUnexpectedStatus (HTTP status other than
// 200) and ErrMalformedResponse (undecodable body or missing key). Nothing is
// retried.
package navdata
