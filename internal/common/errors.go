// Package common defines sentinel errors shared by the crawler's storage and
// service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors for records coming from the remote catalogue.
	ErrorIncorrectRecord = errors.New("incorrect record")
)
