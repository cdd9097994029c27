package domain

import "time"

// Employee is the central person record. DepartmentID and JobRoleID are plain
// integer foreign keys navigated by lookup, never by ORM association; the
// manager back-reference on Department closes the only cycle in the schema,
// so neither side declares a database-level cascade.
type Employee struct {
	BaseModel
	Name         string     `gorm:"size:255;not null" json:"name"`
	Email        string     `gorm:"size:255" json:"email"`
	Phone        string     `gorm:"size:50" json:"phone"`
	Address      string     `gorm:"size:500" json:"address"`
	HireDate     *time.Time `json:"hireDate"`
	Salary       float64    `json:"salary"`
	Status       string     `gorm:"size:50" json:"status"`
	DepartmentID *uint      `gorm:"index" json:"departmentId"`
	JobRoleID    *uint      `gorm:"index" json:"jobRoleId"`
}

// Department groups employees. ManagerID points back at an Employee.
type Department struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	Location    string `gorm:"size:255" json:"location"`
	ManagerID   *uint  `gorm:"index" json:"managerId"`
}

// JobRole describes a position an employee can hold.
type JobRole struct {
	BaseModel
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"size:1000" json:"description"`
	MinSalary   float64 `json:"minSalary"`
	MaxSalary   float64 `json:"maxSalary"`
}
