package domain

import "time"

// Project is a unit of work employees are assigned to. Like awards and
// nominations it historically supported physical deletion; that survives only
// as the admin purge operation.
type Project struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"size:2000" json:"description"`
	StartDate   *time.Time `gorm:"index" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `gorm:"size:50" json:"status"`
}

// EmployeeProject assigns an employee to a project with a role.
type EmployeeProject struct {
	BaseModel
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	ProjectID  uint       `gorm:"index;not null" json:"projectId"`
	Role       string     `gorm:"size:100" json:"role"`
	AssignedAt *time.Time `json:"assignedAt"`
}
