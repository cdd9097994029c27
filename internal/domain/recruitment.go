package domain

import "time"

// JobPosting is an open position advertised to candidates.
type JobPosting struct {
	BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"size:2000" json:"description"`
	DepartmentID *uint      `gorm:"index" json:"departmentId"`
	Location     string     `gorm:"size:255" json:"location"`
	PostedAt     *time.Time `gorm:"index" json:"postedAt"`
	ClosesAt     *time.Time `json:"closesAt"`
	Status       string     `gorm:"size:50" json:"status"`
}

// Application is a candidate's application against a posting.
type Application struct {
	BaseModel
	JobPostingID   uint       `gorm:"index;not null" json:"jobPostingId"`
	CandidateName  string     `gorm:"size:255;not null" json:"candidateName"`
	CandidateEmail string     `gorm:"size:255" json:"candidateEmail"`
	ResumeURL      string     `gorm:"size:1000" json:"resumeUrl"`
	AppliedAt      *time.Time `json:"appliedAt"`
	Status         string     `gorm:"size:50" json:"status"`
}

// Interview schedules a conversation for an application.
type Interview struct {
	BaseModel
	ApplicationID uint       `gorm:"index;not null" json:"applicationId"`
	InterviewerID *uint      `gorm:"index" json:"interviewerId"`
	ScheduledAt   *time.Time `gorm:"index" json:"scheduledAt"`
	Mode          string     `gorm:"size:50" json:"mode"`
	Notes         string     `gorm:"size:2000" json:"notes"`
	Outcome       string     `gorm:"size:50" json:"outcome"`
}
