package domain

import "time"

// Announcement is a company-wide notice. Pinned announcements surface first
// in clients; pinning is a narrow PATCH transition, not a full update.
type Announcement struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Body        string     `gorm:"size:4000" json:"body"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `gorm:"index" json:"publishedAt"`
}

// Message is a direct note between two employees.
type Message struct {
	BaseModel
	SenderID    uint       `gorm:"index;not null" json:"senderId"`
	RecipientID uint       `gorm:"index;not null" json:"recipientId"`
	Subject     string     `gorm:"size:255" json:"subject"`
	Body        string     `gorm:"size:4000" json:"body"`
	ReadAt      *time.Time `json:"readAt"`
}

// Feedback is free-form input from an employee.
type Feedback struct {
	BaseModel
	EmployeeID uint   `gorm:"index;not null" json:"employeeId"`
	Category   string `gorm:"size:100" json:"category"`
	Body       string `gorm:"size:4000" json:"body"`
	Anonymous  bool   `json:"anonymous"`
}

// Survey is a questionnaire opened to employees.
type Survey struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:2000" json:"description"`
	OpensAt     *time.Time `json:"opensAt"`
	ClosesAt    *time.Time `json:"closesAt"`
	Status      string     `gorm:"size:50" json:"status"`
}
