package domain

import "time"

// PerformanceReview records a periodic evaluation of an employee.
type PerformanceReview struct {
	BaseModel
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	ReviewerID *uint      `gorm:"index" json:"reviewerId"`
	ReviewDate *time.Time `gorm:"index" json:"reviewDate"`
	Period     string     `gorm:"size:50" json:"period"`
	Rating     int        `json:"rating"`
	Comments   string     `gorm:"size:2000" json:"comments"`
}

// OKRGoal is a company-aligned objective with a measurable result.
type OKRGoal struct {
	BaseModel
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	Objective  string     `gorm:"size:500;not null" json:"objective"`
	KeyResult  string     `gorm:"size:1000" json:"keyResult"`
	Progress   int        `json:"progress"`
	DueDate    *time.Time `json:"dueDate"`
	Status     string     `gorm:"size:50" json:"status"`
}

// PersonalGoal is a self-set development goal.
type PersonalGoal struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	Status      string     `gorm:"size:50" json:"status"`
}
