package models

// AirportSet maps airport codes to records. It remembers the order in which
// codes were first seen, and a later Put for a known code replaces the value
// in place (last write wins).
type AirportSet struct {
	order []string
	items map[string]AirportRecord
}

func NewAirportSet() *AirportSet {
	return &AirportSet{items: make(map[string]AirportRecord)}
}

func (s *AirportSet) Put(r AirportRecord) {
	code := string(r.ICAO)
	if _, ok := s.items[code]; !ok {
		s.order = append(s.order, code)
	}
	s.items[code] = r
}

// Merge puts every record of o into s, in o's order.
func (s *AirportSet) Merge(o *AirportSet) {
	if o == nil {
		return
	}
	for _, code := range o.order {
		s.Put(o.items[code])
	}
}

func (s *AirportSet) Get(code string) (AirportRecord, bool) {
	if s == nil {
		return AirportRecord{}, false
	}
	r, ok := s.items[code]
	return r, ok
}

func (s *AirportSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Codes returns the airport codes in first-seen order.
func (s *AirportSet) Codes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Items returns the records in first-seen order.
func (s *AirportSet) Items() []AirportRecord {
	if s == nil {
		return nil
	}
	out := make([]AirportRecord, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.items[code])
	}
	return out
}
