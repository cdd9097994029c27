package domain

import "time"

// Training is a course offered to employees. Instructor has no backing
// column in the original schema; the response layer synthesizes a literal
// default when it is empty.
type Training struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	StartDate   *time.Time `gorm:"index" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `gorm:"size:255" json:"location"`
}

// EmployeeTraining enrolls an employee in a training.
type EmployeeTraining struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	TrainingID  uint       `gorm:"index;not null" json:"trainingId"`
	Status      string     `gorm:"size:50" json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	Score       float64    `json:"score"`
}
