package compensation

import "time"

// Compensation is keyed by the owning employee's id. Salary holds the
// formatted currency string; the numeric input is not retained.
type Compensation struct {
	EmployeeCompensationID string     `gorm:"column:employee_compensation_id;primaryKey" bson:"_id"`
	Salary                 string     `bson:"salary"`
	EffectiveDate          *time.Time `gorm:"type:date" bson:"effectiveDate,omitempty"`
	CreatedAt              time.Time  `bson:"createdAt"`
	UpdatedAt              time.Time  `bson:"updatedAt"`
}

func (Compensation) TableName() string {
	return "compensations"
}
