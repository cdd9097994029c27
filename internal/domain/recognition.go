package domain

import "time"

// Award is a granted recognition. Historically hard-deleted; it now follows
// the uniform soft-delete contract, with physical removal available only
// through the admin purge operation.
type Award struct {
	BaseModel
	EmployeeID   uint       `gorm:"index;not null" json:"employeeId"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"size:1000" json:"description"`
	AwardedAt    *time.Time `gorm:"index" json:"awardedAt"`
	NominationID *uint      `gorm:"index" json:"nominationId"`
}

// Nomination proposes an employee for an award.
type Nomination struct {
	BaseModel
	EmployeeID  uint   `gorm:"index;not null" json:"employeeId"`
	NominatorID *uint  `gorm:"index" json:"nominatorId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Reason      string `gorm:"size:2000" json:"reason"`
	Status      string `gorm:"size:50" json:"status"`
}

// Nomination status values.
const (
	NominationPending = "pending"
	NominationAwarded = "awarded"
)
