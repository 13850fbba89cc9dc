package models

// DashboardStats aggregates the session user's enforcement activity.
// Admins see department-wide numbers, employees their own.
type DashboardStats struct {
	ChallanCount  int              `json:"challanCount"`
	TotalFine     int              `json:"totalFine"`
	HighRiskCount int              `json:"highRiskCount"`
	EmployeeCount *int             `json:"employeeCount,omitempty"`
	Recent        []ChallanSummary `json:"recent"`
}

// ChallanSummary is a dashboard line item with the issuer name resolved.
type ChallanSummary struct {
	ID            string `json:"id"`
	VehicleNumber string `json:"vehicleNumber"`
	TotalFine     int    `json:"totalFine"`
	Date          string `json:"date"`
	IssuedByName  string `json:"issuedByName"`
}
