package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/lidocrawler/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportRecord_DecodesMixedScalars(t *testing.T) {
	raw := `{
		"icao": "LFPG", "iata": "CDG", "airport_id": 1234,
		"country": "FR", "cityname": "Paris", "name": "Charles de Gaulle",
		"latitude": "49.0097", "longitude": 2.5479,
		"elevation": "392", "longestrunway": 13829.0
	}`

	var r AirportRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	want := AirportRecord{
		ICAO: "LFPG", IATA: "CDG", AirportID: "1234",
		Country: "FR", City: "Paris", Name: "Charles de Gaulle",
		Latitude: 49.0097, Longitude: 2.5479,
		Elevation: 392, LongestRunway: 13829,
	}
	assert.Empty(t, cmp.Diff(want, r))
	require.NoError(t, r.Validate())
}

func TestAirportRecord_NullsAndEmpties(t *testing.T) {
	var r AirportRecord
	require.NoError(t, json.Unmarshal([]byte(`{"icao":"XXXX","iata":null,"latitude":"","elevation":null}`), &r))
	assert.Equal(t, FlexString(""), r.IATA)
	assert.Equal(t, FlexFloat(0), r.Latitude)
	assert.Equal(t, FlexInt(0), r.Elevation)
}

func TestAirportRecord_Validate(t *testing.T) {
	err := AirportRecord{Name: "nameless"}.Validate()
	require.ErrorIs(t, err, common.ErrorIncorrectRecord)
}

func TestChartRecord_GeoChartForms(t *testing.T) {
	tests := []struct {
		in   string
		want FlexBool
	}{
		{`1`, true}, {`0`, false}, {`"1"`, true}, {`"0"`, false},
		{`true`, true}, {`false`, false}, {`null`, false}, {`""`, false}, {`"true"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c ChartRecord
			require.NoError(t, json.Unmarshal([]byte(`{"chart_id":7,"geo_chart":`+tt.in+`}`), &c))
			assert.Equal(t, tt.want, c.GeoChart)
			assert.Equal(t, FlexString("7"), c.ChartID)
		})
	}
}

func TestChartRecord_BadScalars(t *testing.T) {
	var c ChartRecord
	require.Error(t, json.Unmarshal([]byte(`{"chart_id":{"x":1}}`), &c))
	require.Error(t, json.Unmarshal([]byte(`{"chart_id":"1","geo_chart":"maybe"}`), &c))

	var r AirportRecord
	require.Error(t, json.Unmarshal([]byte(`{"icao":"X","latitude":"north"}`), &r))
}

func TestChartRecord_Validate(t *testing.T) {
	require.ErrorIs(t, ChartRecord{ChartName: "ILS 27"}.Validate(), common.ErrorIncorrectRecord)
	require.NoError(t, ChartRecord{ChartID: "1"}.Validate())
}

func TestAirportSet_LastWriteWinsKeepsFirstPosition(t *testing.T) {
	s := NewAirportSet()
	s.Put(AirportRecord{ICAO: "X", Name: "from A"})
	s.Put(AirportRecord{ICAO: "Y", Name: "only A"})

	b := NewAirportSet()
	b.Put(AirportRecord{ICAO: "Z", Name: "only B"})
	b.Put(AirportRecord{ICAO: "X", Name: "from B"})

	s.Merge(b)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"X", "Y", "Z"}, s.Codes())

	x, ok := s.Get("X")
	require.True(t, ok)
	assert.Equal(t, FlexString("from B"), x.Name)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, FlexString("from B"), items[0].Name)
}

func TestAirportSet_NilSafe(t *testing.T) {
	var s *AirportSet
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Codes())
	assert.Nil(t, s.Items())
	_, ok := s.Get("X")
	assert.False(t, ok)

	NewAirportSet().Merge(nil)
}

func TestSnapshotFromRecord(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r := AirportRecord{ICAO: "EDDF", AirportID: "99", Country: "DE", City: "Frankfurt", Name: "Frankfurt Main",
		Latitude: 50.03, Longitude: 8.57, Elevation: 364, LongestRunway: 13123}

	got := SnapshotFromRecord(r, at)

	want := &AirportSnapshot{ICAO: "EDDF", NavDataAirportID: "99", Country: "DE", City: "Frankfurt",
		Name: "Frankfurt Main", Latitude: 50.03, Longitude: 8.57, Elevation: 364, LongestRunway: 13123, CapturedAt: at}
	assert.Empty(t, cmp.Diff(want, got))
}
