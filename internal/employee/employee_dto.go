package employee

// EmployeeRequest is the full desired state of an employee. Direct reports are
// accepted in any shape but only their employeeId is kept.
type EmployeeRequest struct {
	EmployeeID    string                `json:"employeeId"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	Position      string                `json:"position"`
	Department    string                `json:"department"`
	DirectReports []DirectReportRequest `json:"directReports" binding:"omitempty,dive"`
}

type DirectReportRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type EmployeeResponse struct {
	EmployeeID    string             `json:"employeeId"`
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Position      string             `json:"position"`
	Department    string             `json:"department"`
	DirectReports []EmployeeResponse `json:"directReports,omitempty"`
}
