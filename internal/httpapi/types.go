package httpapi

// PlanningRequest is the JSON body of PUT /risks (spec.md §6).
type PlanningRequest struct {
	Sensors       []SensorPayload `json:"sensors"`
	AmbientalRisk []int           `json:"ambiental_risk,omitempty"`
	MapName       *string         `json:"map_name"`
}

// SensorPayload is one sensor record on the wire: data is a 2-element
// array [acceleration_series, time_series]; location is optional unless
// more than one sensor is present (spec.md §3, §4.9).
type SensorPayload struct {
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type,omitempty"`
	Data     [][]float64 `json:"data"`
	Location *[2]float64 `json:"location,omitempty"`
}

// PlanningResponse is the JSON body returned by PUT /risks and pushed
// downstream to the navigation service (spec.md §6).
type PlanningResponse struct {
	PersonalProtectionEquipment string      `json:"personal_protection_equipment"`
	Map                         []FloorRisk `json:"map"`
}

// FloorRisk is one floor's dense risk vector.
type FloorRisk struct {
	Floor      int   `json:"floor"`
	RiskValues []int `json:"risk_values"`
}

// NewPlanningResponse builds the standard two-floor response shape: floor 0
// carries the combined risk vector, floor 1 is a fixed placeholder (spec.md
// §6's literal `{"floor":1,"risk_values":[0]}`).
func NewPlanningResponse(combined []int) PlanningResponse {
	return PlanningResponse{
		PersonalProtectionEquipment: "placeholder",
		Map: []FloorRisk{
			{Floor: 0, RiskValues: combined},
			{Floor: 1, RiskValues: []int{0}},
		},
	}
}
