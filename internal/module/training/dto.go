package training

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// defaultInstructor is the literal default the original contract reports for
// the instructor field, which has no backing column.
const defaultInstructor = "TBD"

// TrainingRequest represents the input for creating or replacing a training course.
type TrainingRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=1000"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `json:"location" binding:"max=255"`
}

// TrainingResponse is the wire shape of a training course. Instructor is
// synthesized, not stored.
type TrainingResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `json:"location"`
	Instructor  string     `json:"instructor"`
	rest.Audit
}

func applyTraining(req *TrainingRequest, e *domain.Training) {
	e.Title = req.Title
	e.Description = req.Description
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Location = req.Location
}

func toTrainingResponse(e *domain.Training) TrainingResponse {
	return TrainingResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Instructor:  defaultInstructor,
		Audit:       rest.AuditOf(e),
	}
}

// EnrollmentRequest represents the input for creating or replacing a training enrollment.
type EnrollmentRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	TrainingID  uint       `json:"trainingId" binding:"required"`
	Status      string     `json:"status" binding:"max=50"`
	CompletedAt *time.Time `json:"completedAt"`
	Score       float64    `json:"score" binding:"gte=0"`
}

// EnrollmentResponse is the wire shape of a training enrollment.
type EnrollmentResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	TrainingID  uint       `json:"trainingId"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	Score       float64    `json:"score"`
	rest.Audit
}

func applyEnrollment(req *EnrollmentRequest, e *domain.EmployeeTraining) {
	e.EmployeeID = req.EmployeeID
	e.TrainingID = req.TrainingID
	e.Status = req.Status
	e.CompletedAt = req.CompletedAt
	e.Score = req.Score
}

func toEnrollmentResponse(e *domain.EmployeeTraining) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		TrainingID:  e.TrainingID,
		Status:      e.Status,
		CompletedAt: e.CompletedAt,
		Score:       e.Score,
		Audit:       rest.AuditOf(e),
	}
}
