package domain

import "time"

// Payroll is one pay-period record for an employee.
type Payroll struct {
	BaseModel
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	PayDate    time.Time `gorm:"index" json:"payDate"`
	GrossPay   float64   `json:"grossPay"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	Currency   string    `gorm:"size:10" json:"currency"`
}

// Benefit is a benefit enrollment for an employee.
type Benefit struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"size:1000" json:"description"`
	Provider    string     `gorm:"size:255" json:"provider"`
	EnrolledAt  *time.Time `json:"enrolledAt"`
}
