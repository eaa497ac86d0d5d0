package employee

import (
	"time"
)

// Employee is the persisted record. DirectReports only ever hold identifiers;
// full records are looked up on demand.
type Employee struct {
	EmployeeID    string         `gorm:"column:employee_id;primaryKey" bson:"_id"`
	FirstName     string         `bson:"firstName"`
	LastName      string         `bson:"lastName"`
	Position      string         `bson:"position"`
	Department    string         `bson:"department"`
	DirectReports []DirectReport `gorm:"type:jsonb;serializer:json" bson:"directReports,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt"`
}

// DirectReport is a stub reference to another employee.
type DirectReport struct {
	EmployeeID string `json:"employeeId" bson:"employeeId"`
}

func (Employee) TableName() string {
	return "employees"
}

// ReportIDs returns the direct report identifiers in stored order.
func (e Employee) ReportIDs() []string {
	ids := make([]string, len(e.DirectReports))
	for i, r := range e.DirectReports {
		ids[i] = r.EmployeeID
	}
	return ids
}
