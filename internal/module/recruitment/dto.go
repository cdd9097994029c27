package recruitment

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// JobPostingRequest represents the input for creating or replacing a job posting.
type JobPostingRequest struct {
	Title        string     `json:"title" binding:"required,max=255"`
	Description  string     `json:"description" binding:"max=2000"`
	DepartmentID *uint      `json:"departmentId"`
	Location     string     `json:"location" binding:"max=255"`
	PostedAt     *time.Time `json:"postedAt"`
	ClosesAt     *time.Time `json:"closesAt"`
	Status       string     `json:"status" binding:"max=50"`
}

// JobPostingResponse is the wire shape of a job posting.
type JobPostingResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DepartmentID *uint      `json:"departmentId"`
	Location     string     `json:"location"`
	PostedAt     *time.Time `json:"postedAt"`
	ClosesAt     *time.Time `json:"closesAt"`
	Status       string     `json:"status"`
	rest.Audit
}

func applyJobPosting(req *JobPostingRequest, e *domain.JobPosting) {
	e.Title = req.Title
	e.Description = req.Description
	e.DepartmentID = req.DepartmentID
	e.Location = req.Location
	e.PostedAt = req.PostedAt
	e.ClosesAt = req.ClosesAt
	e.Status = req.Status
}

func toJobPostingResponse(e *domain.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		DepartmentID: e.DepartmentID,
		Location:     e.Location,
		PostedAt:     e.PostedAt,
		ClosesAt:     e.ClosesAt,
		Status:       e.Status,
		Audit:        rest.AuditOf(e),
	}
}

// ApplicationRequest represents the input for creating or replacing an application.
type ApplicationRequest struct {
	JobPostingID   uint       `json:"jobPostingId" binding:"required"`
	CandidateName  string     `json:"candidateName" binding:"required,max=255"`
	CandidateEmail string     `json:"candidateEmail" binding:"omitempty,email"`
	ResumeURL      string     `json:"resumeUrl" binding:"max=1000"`
	AppliedAt      *time.Time `json:"appliedAt"`
	Status         string     `json:"status" binding:"max=50"`
}

// ApplicationResponse is the wire shape of an application.
type ApplicationResponse struct {
	ID             uint       `json:"id"`
	JobPostingID   uint       `json:"jobPostingId"`
	CandidateName  string     `json:"candidateName"`
	CandidateEmail string     `json:"candidateEmail"`
	ResumeURL      string     `json:"resumeUrl"`
	AppliedAt      *time.Time `json:"appliedAt"`
	Status         string     `json:"status"`
	rest.Audit
}

func applyApplication(req *ApplicationRequest, e *domain.Application) {
	e.JobPostingID = req.JobPostingID
	e.CandidateName = req.CandidateName
	e.CandidateEmail = req.CandidateEmail
	e.ResumeURL = req.ResumeURL
	e.AppliedAt = req.AppliedAt
	e.Status = req.Status
}

func toApplicationResponse(e *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             e.ID,
		JobPostingID:   e.JobPostingID,
		CandidateName:  e.CandidateName,
		CandidateEmail: e.CandidateEmail,
		ResumeURL:      e.ResumeURL,
		AppliedAt:      e.AppliedAt,
		Status:         e.Status,
		Audit:          rest.AuditOf(e),
	}
}

// InterviewRequest represents the input for creating or replacing an interview.
type InterviewRequest struct {
	ApplicationID uint       `json:"applicationId" binding:"required"`
	InterviewerID *uint      `json:"interviewerId"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	Mode          string     `json:"mode" binding:"max=50"`
	Notes         string     `json:"notes" binding:"max=2000"`
	Outcome       string     `json:"outcome" binding:"max=50"`
}

// InterviewResponse is the wire shape of an interview.
type InterviewResponse struct {
	ID            uint       `json:"id"`
	ApplicationID uint       `json:"applicationId"`
	InterviewerID *uint      `json:"interviewerId"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	Mode          string     `json:"mode"`
	Notes         string     `json:"notes"`
	Outcome       string     `json:"outcome"`
	rest.Audit
}

func applyInterview(req *InterviewRequest, e *domain.Interview) {
	e.ApplicationID = req.ApplicationID
	e.InterviewerID = req.InterviewerID
	e.ScheduledAt = req.ScheduledAt
	e.Mode = req.Mode
	e.Notes = req.Notes
	e.Outcome = req.Outcome
}

func toInterviewResponse(e *domain.Interview) InterviewResponse {
	return InterviewResponse{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		InterviewerID: e.InterviewerID,
		ScheduledAt:   e.ScheduledAt,
		Mode:          e.Mode,
		Notes:         e.Notes,
		Outcome:       e.Outcome,
		Audit:         rest.AuditOf(e),
	}
}
