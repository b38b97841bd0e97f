package response_models

type POI struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Category      string   `json:"category"`
	PriceTier     string   `json:"price_tier"`
	AvgDwellMin   int      `json:"avg_dwell_min"`
	AdmissionCost float64  `json:"admission_cost"`
	OpenFrom      string   `json:"open_from"`
	OpenTo        string   `json:"open_to"`
	Tags          []string `json:"tags,omitempty"`
}
