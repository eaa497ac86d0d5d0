package compensation

import "github.com/shopspring/decimal"

const dateLayout = "2006-01-02"

// SubmitCompensationRequest accepts salary as a JSON number or a numeric string.
type SubmitCompensationRequest struct {
	Salary        *decimal.Decimal `json:"salary" binding:"required"`
	EffectiveDate string           `json:"effectiveDate" binding:"omitempty,datetime=2006-01-02"`
}

type CompensationResponse struct {
	EmployeeCompensationID string `json:"employeeCompensationId"`
	Salary                 string `json:"salary"`
	EffectiveDate          string `json:"effectiveDate,omitempty"`
}
