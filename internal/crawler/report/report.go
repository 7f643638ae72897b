// Package report writes the per-airport outcomes of a crawl as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/lidocrawler/internal/crawler/models"
	"github.com/dmitrijs2005/lidocrawler/internal/filex"
	"github.com/jszwec/csvutil"
)

// Write emits a header row followed by one row per outcome.
func Write(w io.Writer, outcomes []models.AirportOutcome) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(models.AirportOutcome{}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, o := range outcomes {
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("encode %s: %w", o.ICAO, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile replaces path with a fresh report.
func WriteFile(path string, outcomes []models.AirportOutcome) (err error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(f, outcomes)
}

// Read parses a report written by Write.
func Read(r io.Reader) ([]models.AirportOutcome, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read report header: %w", err)
	}

	var out []models.AirportOutcome
	for {
		var o models.AirportOutcome
		if err := dec.Decode(&o); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}
