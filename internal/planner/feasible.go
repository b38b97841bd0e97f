package planner

import (
	"time"

	"roamly/internal/catalog"
	"roamly/internal/preferences"
)

// DayContext is everything a planner needs to build one day of stops.
type DayContext struct {
	Catalog      *catalog.Catalog
	Profile      WeightProfile
	Prefs        preferences.State
	RatingMeans  map[string]float64
	Mobility     string
	SpeedKmh     float64
	Live         bool
	Weekday      time.Weekday
	WeekdayKnown bool
	StartMinute  int
	EndMinute    int
	Day          int
}

// Stop is one scheduled visit. Times are minutes past midnight.
type Stop struct {
	POIID         string
	Name          string
	StartMinute   int
	EndMinute     int
	DwellMin      int
	AdmissionCost float64
	Day           int
}

// Leg is the transfer preceding a stop.
type Leg struct {
	From   string
	To     string
	Mode   string
	EtaMin int
	Day    int
}

// DayResult is a single day's plan plus the planner's effort counter
// (candidate evaluations for greedy, node expansions for A*).
type DayResult struct {
	Stops  []Stop
	Legs   []Leg
	Spent  float64
	Effort int
}

// closedToday implements the one live closure rule: museums shut on
// Sundays. With live constraints off or the weekday unknown, everything
// is treated as open.
func (d *DayContext) closedToday(poi catalog.POI) bool {
	if !d.Live || !d.WeekdayKnown {
		return false
	}
	return d.Weekday == time.Sunday && preferences.NormalizeCategory(poi.Category) == "museums"
}

// admissible is the shared gate every planner runs before committing a
// candidate: unused, open today, reachable inside its opening window with
// room for the dwell, affordable, and done before the day ends. Returns the
// arrival minute when the candidate passes.
func (d *DayContext) admissible(poi catalog.POI, used map[string]bool, from Location, t int, budget float64) (int, bool) {
	if used[poi.ID] {
		return 0, false
	}
	if d.closedToday(poi) {
		return 0, false
	}

	travel := TravelMinutes(from, Location{Lat: poi.Lat, Lon: poi.Lon}, d.SpeedKmh, t, d.Live)
	arrival := t + travel

	if arrival < poi.OpenFrom || arrival > poi.OpenTo-poi.AvgDwellMin {
		return 0, false
	}
	if budget-poi.AdmissionCost < 0 {
		return 0, false
	}
	if arrival+poi.AvgDwellMin > d.EndMinute {
		return 0, false
	}

	return arrival, true
}

func (d *DayContext) score(poi catalog.POI) float64 {
	return Score(poi, d.Profile, d.Prefs, d.RatingMeans)
}
