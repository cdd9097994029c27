package payroll

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// PayrollRequest represents the input for creating or replacing a payroll record.
type PayrollRequest struct {
	EmployeeID uint      `json:"employeeId" binding:"required"`
	PayDate    time.Time `json:"payDate" binding:"required"`
	GrossPay   float64   `json:"grossPay" binding:"gte=0"`
	Deductions float64   `json:"deductions" binding:"gte=0"`
	NetPay     float64   `json:"netPay" binding:"gte=0"`
	Currency   string    `json:"currency" binding:"max=10"`
}

// PayrollResponse is the wire shape of a payroll record.
type PayrollResponse struct {
	ID         uint      `json:"id"`
	EmployeeID uint      `json:"employeeId"`
	PayDate    time.Time `json:"payDate"`
	GrossPay   float64   `json:"grossPay"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	Currency   string    `json:"currency"`
	rest.Audit
}

func applyPayroll(req *PayrollRequest, e *domain.Payroll) {
	e.EmployeeID = req.EmployeeID
	e.PayDate = req.PayDate
	e.GrossPay = req.GrossPay
	e.Deductions = req.Deductions
	e.NetPay = req.NetPay
	e.Currency = req.Currency
}

func toPayrollResponse(e *domain.Payroll) PayrollResponse {
	return PayrollResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		PayDate:    e.PayDate,
		GrossPay:   e.GrossPay,
		Deductions: e.Deductions,
		NetPay:     e.NetPay,
		Currency:   e.Currency,
		Audit:      rest.AuditOf(e),
	}
}

// BenefitRequest represents the input for creating or replacing a benefit enrollment.
type BenefitRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=1000"`
	Provider    string     `json:"provider" binding:"max=255"`
	EnrolledAt  *time.Time `json:"enrolledAt"`
}

// BenefitResponse is the wire shape of a benefit enrollment.
type BenefitResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Provider    string     `json:"provider"`
	EnrolledAt  *time.Time `json:"enrolledAt"`
	rest.Audit
}

func applyBenefit(req *BenefitRequest, e *domain.Benefit) {
	e.EmployeeID = req.EmployeeID
	e.Name = req.Name
	e.Description = req.Description
	e.Provider = req.Provider
	e.EnrolledAt = req.EnrolledAt
}

func toBenefitResponse(e *domain.Benefit) BenefitResponse {
	return BenefitResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Description: e.Description,
		Provider:    e.Provider,
		EnrolledAt:  e.EnrolledAt,
		Audit:       rest.AuditOf(e),
	}
}
