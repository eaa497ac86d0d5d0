package reporting

// Node is a fully hydrated employee. Each node owns its DirectReports slice.
type Node struct {
	EmployeeID    string `json:"employeeId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	DirectReports []Node `json:"directReports,omitempty"`
}

// Structure is derived on every request and never stored.
type Structure struct {
	Employee        Node `json:"employee"`
	NumberOfReports int  `json:"numberOfReports"`
}
