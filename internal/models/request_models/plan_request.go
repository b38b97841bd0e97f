package request_models

type Preferences struct {
	Like []string `json:"like"`
}

type PlanRequest struct {
	City      string  `json:"city"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Budget    float64 `json:"budget_total"`
	Mobility  string  `json:"mobility"`
	HasCar    bool    `json:"has_car"`

	Preferences Preferences `json:"preferences"`
	Strategy    string      `json:"strategy"`
	Days        int         `json:"days"`

	UseLiveConstraints bool `json:"use_live_constraints"`

	// Accepted for client compatibility; no planner consumes it yet.
	MustSee []string `json:"must_see"`
}
