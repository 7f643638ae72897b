package models

import "time"

// DefaultChartMimeType is what the catalogue serves for every chart.
const DefaultChartMimeType = "application/pdf"

// Airport is the identity row of an airport. LatestInformation points at the
// snapshot captured when the row was created (see AdvanceLatest in services).
type Airport struct {
	ICAO              string
	IATA              string
	LatestInformation int64
}

// AirportSnapshot is one immutable capture of an airport's attributes.
type AirportSnapshot struct {
	ID               int64
	ICAO             string
	NavDataAirportID string
	Country          string
	City             string
	Name             string
	Latitude         float64
	Longitude        float64
	Elevation        int64
	LongestRunway    int64
	CapturedAt       time.Time
}

// Chart is the metadata of one chart owned by a snapshot.
type Chart struct {
	ID                 int64
	AirportInformation int64
	NavDataChartID     string
	Type               string
	Name               string
	GeoChart           bool
	ChartBinary        int64
}

// ChartBinary is a downloaded document, owned by exactly one Chart.
type ChartBinary struct {
	ID           int64
	MimeType     string
	CreationDate time.Time
	Data         []byte
}

// PersistResult describes what one committed capture wrote.
type PersistResult struct {
	SnapshotID    int64
	AirportExists bool
	// LatestAdvanced is true when airports.latest_information now points
	// at SnapshotID (always for a new airport).
	LatestAdvanced bool
	ChartIDs       []int64
	BinaryIDs      []int64
	Bytes          int64
}

// SnapshotFromRecord converts a directory record into a snapshot row.
func SnapshotFromRecord(r AirportRecord, capturedAt time.Time) *AirportSnapshot {
	return &AirportSnapshot{
		ICAO:             string(r.ICAO),
		NavDataAirportID: string(r.AirportID),
		Country:          string(r.Country),
		City:             string(r.City),
		Name:             string(r.Name),
		Latitude:         float64(r.Latitude),
		Longitude:        float64(r.Longitude),
		Elevation:        int64(r.Elevation),
		LongestRunway:    int64(r.LongestRunway),
		CapturedAt:       capturedAt,
	}
}
