package response_models

type Stop struct {
	PoiID         string  `json:"poi_id"`
	Name          string  `json:"name"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DwellMin      int     `json:"dwell_min"`
	AdmissionCost float64 `json:"admission_est"`
	Day           int     `json:"day"`
}

type Leg struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Mode   string `json:"mode"`
	EtaMin int    `json:"eta_min"`
	Day    int    `json:"day"`
}

type CostSummary struct {
	Admissions float64 `json:"admissions"`
	Transport  float64 `json:"transport"`
	Total      float64 `json:"total"`
}

type Metrics struct {
	Planner        string  `json:"planner"`
	RuntimeMs      float64 `json:"runtime_ms"`
	StopCount      int     `json:"stop_count"`
	TotalTravelMin int     `json:"total_travel_min"`
	TotalScore     float64 `json:"total_score"`
	SearchEffort   int     `json:"search_effort"`
}

type Itinerary struct {
	ItineraryID string      `json:"itinerary_id"`
	Stops       []Stop      `json:"stops"`
	Legs        []Leg       `json:"legs"`
	CostSummary CostSummary `json:"cost_summary"`
	Metrics     Metrics     `json:"metrics"`
}
