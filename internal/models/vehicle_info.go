package models

// VehicleInfo is the structured record returned by the external vehicle
// registration lookup. Statuses are either "Active" or "Expired" and
// RegistrationDate is DD-MM-YYYY text; the response is validated for
// shape only, never for semantic correctness.
type VehicleInfo struct {
	OwnerName        string `json:"ownerName"`
	RegistrationDate string `json:"registrationDate"`
	VehicleModel     string `json:"vehicleModel"`
	InsuranceStatus  string `json:"insuranceStatus"`
	PUCStatus        string `json:"pucStatus"`
}
