package models

import "time"

type OutcomeStatus string

const (
	OutcomeCaptured OutcomeStatus = "captured"
	OutcomeSkipped  OutcomeStatus = "skipped"
	OutcomeFailed   OutcomeStatus = "failed"
)

// AirportOutcome is what happened to one target airport during a run. The
// csv tags drive the crawl report.
type AirportOutcome struct {
	ICAO         string        `csv:"icao"`
	Status       OutcomeStatus `csv:"status"`
	SnapshotID   int64         `csv:"snapshot_id,omitempty"`
	Charts       int           `csv:"charts"`
	Bytes        int64         `csv:"bytes"`
	PauseSeconds int           `csv:"pause_seconds,omitempty"`
	FinishedAt   time.Time     `csv:"finished_at"`
	Error        string        `csv:"error,omitempty"`
}

// ChartDocument is a committed chart binary together with where it came
// from; it is what gets mirrored to object storage.
type ChartDocument struct {
	ICAO       string
	SnapshotID int64
	BinaryID   int64
	ChartID    string
	ChartType  string
	ChartName  string
	MimeType   string
	Data       []byte
}
