// Package models defines the records exchanged with the Nav Data Pro API and
// the rows the crawler persists.
//
// Remote records (AirportRecord, ChartRecord) decode leniently: the API is
// not consistent about quoting numbers, so the Flex* types accept both forms.
// Persisted rows (Airport, AirportSnapshot, Chart, ChartBinary) mirror the four
// store relations one to one.
package models
