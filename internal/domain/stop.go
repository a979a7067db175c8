package domain

// Represents a named physical pickup/drop-off location with a stable
// identifier. Stops are loaded once at session start and never mutated
// afterwards.
type Stop struct {
	ID        int64
	No        string
	Name      string
	Type      string
	Bearing   float64
	Latitude  float64
	Longitude float64
}

// UnknownStopName is reported for stop ids the directory has never seen.
const UnknownStopName = "<unknown>"

// StopIndex is the read-only stop directory used to resolve stand ids to
// display names. Ids are normalized to int64 once at the ingestion
// boundary (see adapters/backend), so lookups here are plain integer
// comparisons rather than per-call coercions.
type StopIndex struct {
	byID  map[int64]string
	stops []Stop
}

func NewStopIndex(stops []Stop) *StopIndex {
	byID := make(map[int64]string, len(stops))
	for _, s := range stops {
		byID[s.ID] = s.Name
	}
	return &StopIndex{byID: byID, stops: stops}
}

// Name resolves a stop id to its display name. Unknown ids resolve to
// UnknownStopName, never to an error.
func (x *StopIndex) Name(id int64) string {
	if x != nil {
		if name, ok := x.byID[id]; ok {
			return name
		}
	}
	return UnknownStopName
}

// Stops returns the loaded stop list in its original order.
func (x *StopIndex) Stops() []Stop {
	if x == nil {
		return nil
	}
	return x.stops
}

func (x *StopIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.stops)
}
