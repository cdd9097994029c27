package domain

import "time"

// Attendance records one employee-day of presence.
type Attendance struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	Date        time.Time  `gorm:"index" json:"date"`
	CheckIn     *time.Time `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut"`
	HoursWorked float64    `json:"hoursWorked"`
	Status      string     `gorm:"size:50" json:"status"`
}

// Leave is a request for time off of a given type.
type Leave struct {
	BaseModel
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	LeaveType  string    `gorm:"size:100" json:"leaveType"`
	StartDate  time.Time `gorm:"index" json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `gorm:"size:1000" json:"reason"`
	Status     string    `gorm:"size:50" json:"status"`
}
