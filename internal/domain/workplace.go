package domain

import "time"

// Grievance is a formal workplace complaint.
type Grievance struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	Subject     string     `gorm:"size:255;not null" json:"subject"`
	Description string     `gorm:"size:4000" json:"description"`
	FiledAt     *time.Time `json:"filedAt"`
	Status      string     `gorm:"size:50" json:"status"`
	Resolution  string     `gorm:"size:2000" json:"resolution"`
}

// Policy is a published company policy document.
type Policy struct {
	BaseModel
	Title         string     `gorm:"size:255;not null" json:"title"`
	Body          string     `gorm:"size:8000" json:"body"`
	Category      string     `gorm:"size:100" json:"category"`
	EffectiveFrom *time.Time `json:"effectiveFrom"`
}

// Incident is a reported workplace incident.
type Incident struct {
	BaseModel
	EmployeeID  uint       `gorm:"index;not null" json:"employeeId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:4000" json:"description"`
	OccurredAt  *time.Time `gorm:"index" json:"occurredAt"`
	Severity    string     `gorm:"size:50" json:"severity"`
	Status      string     `gorm:"size:50" json:"status"`
}
