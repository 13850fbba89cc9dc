package models

// JSON from the front-end

// ChallanRequest carries the issue-challan form submission.
type ChallanRequest struct {
	VehicleNumber       string            `json:"vehicleNumber"`
	DriverName          string            `json:"driverName"`
	OffenseIDs          []string          `json:"offenseIds"`
	IncidentDescription string            `json:"incidentDescription"`
	PhotoEvidence       string            `json:"photoEvidence"`
	CustomFields        map[string]string `json:"customFields"`
}

// QuoteRequest asks for the running fine total of the current selection.
type QuoteRequest struct {
	OffenseIDs []string `json:"offenseIds"`
}

// Quote is the recomputed total for a selection of offenses.
type Quote struct {
	Offenses  []ChallanOffense `json:"offenses"`
	TotalFine int              `json:"totalFine"`
}

// SuggestRequest carries the free-text incident description for offense
// suggestion.
type SuggestRequest struct {
	Description string `json:"description"`
}

// RuleQueryRequest carries a free-text rule book query.
type RuleQueryRequest struct {
	Query string `json:"query"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// PositionRequest carries an officer device position report.
type PositionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
