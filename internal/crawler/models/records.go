package models

import (
	"fmt"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
)

// AirportRecord is one entry of the directory lookup.
type AirportRecord struct {
	ICAO          FlexString `json:"icao"`
	IATA          FlexString `json:"iata"`
	AirportID     FlexString `json:"airport_id"`
	Country       FlexString `json:"country"`
	City          FlexString `json:"cityname"`
	Name          FlexString `json:"name"`
	Latitude      FlexFloat  `json:"latitude"`
	Longitude     FlexFloat  `json:"longitude"`
	Elevation     FlexInt    `json:"elevation"`
	LongestRunway FlexInt    `json:"longestrunway"`
}

// Validate checks the fields the crawler cannot work without.
func (r AirportRecord) Validate() error {
	if r.ICAO == "" {
		return fmt.Errorf("%w: airport without icao code", common.ErrorIncorrectRecord)
	}
	return nil
}

// ChartRecord is one entry of an airport's chart catalogue.
type ChartRecord struct {
	ChartID   FlexString `json:"chart_id"`
	ChartType FlexString `json:"chart_type"`
	ChartName FlexString `json:"chart_name"`
	GeoChart  FlexBool   `json:"geo_chart"`
}

func (r ChartRecord) Validate() error {
	if r.ChartID == "" {
		return fmt.Errorf("%w: chart without chart_id", common.ErrorIncorrectRecord)
	}
	return nil
}
