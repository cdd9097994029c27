package performance

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// ReviewRequest represents the input for creating or replacing a performance review.
type ReviewRequest struct {
	EmployeeID uint       `json:"employeeId" binding:"required"`
	ReviewerID *uint      `json:"reviewerId"`
	ReviewDate *time.Time `json:"reviewDate"`
	Period     string     `json:"period" binding:"max=50"`
	Rating     int        `json:"rating" binding:"gte=0,lte=5"`
	Comments   string     `json:"comments" binding:"max=2000"`
}

// ReviewResponse is the wire shape of a performance review.
type ReviewResponse struct {
	ID         uint       `json:"id"`
	EmployeeID uint       `json:"employeeId"`
	ReviewerID *uint      `json:"reviewerId"`
	ReviewDate *time.Time `json:"reviewDate"`
	Period     string     `json:"period"`
	Rating     int        `json:"rating"`
	Comments   string     `json:"comments"`
	rest.Audit
}

func applyReview(req *ReviewRequest, e *domain.PerformanceReview) {
	e.EmployeeID = req.EmployeeID
	e.ReviewerID = req.ReviewerID
	e.ReviewDate = req.ReviewDate
	e.Period = req.Period
	e.Rating = req.Rating
	e.Comments = req.Comments
}

func toReviewResponse(e *domain.PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		ReviewerID: e.ReviewerID,
		ReviewDate: e.ReviewDate,
		Period:     e.Period,
		Rating:     e.Rating,
		Comments:   e.Comments,
		Audit:      rest.AuditOf(e),
	}
}

// OKRGoalRequest represents the input for creating or replacing an OKR goal.
type OKRGoalRequest struct {
	EmployeeID uint       `json:"employeeId" binding:"required"`
	Objective  string     `json:"objective" binding:"required,max=500"`
	KeyResult  string     `json:"keyResult" binding:"max=1000"`
	Progress   int        `json:"progress" binding:"gte=0,lte=100"`
	DueDate    *time.Time `json:"dueDate"`
	Status     string     `json:"status" binding:"max=50"`
}

// OKRGoalResponse is the wire shape of an OKR goal.
type OKRGoalResponse struct {
	ID         uint       `json:"id"`
	EmployeeID uint       `json:"employeeId"`
	Objective  string     `json:"objective"`
	KeyResult  string     `json:"keyResult"`
	Progress   int        `json:"progress"`
	DueDate    *time.Time `json:"dueDate"`
	Status     string     `json:"status"`
	rest.Audit
}

func applyOKRGoal(req *OKRGoalRequest, e *domain.OKRGoal) {
	e.EmployeeID = req.EmployeeID
	e.Objective = req.Objective
	e.KeyResult = req.KeyResult
	e.Progress = req.Progress
	e.DueDate = req.DueDate
	e.Status = req.Status
}

func toOKRGoalResponse(e *domain.OKRGoal) OKRGoalResponse {
	return OKRGoalResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Objective:  e.Objective,
		KeyResult:  e.KeyResult,
		Progress:   e.Progress,
		DueDate:    e.DueDate,
		Status:     e.Status,
		Audit:      rest.AuditOf(e),
	}
}

// PersonalGoalRequest represents the input for creating or replacing a personal goal.
type PersonalGoalRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=1000"`
	TargetDate  *time.Time `json:"targetDate"`
	Status      string     `json:"status" binding:"max=50"`
}

// PersonalGoalResponse is the wire shape of a personal goal.
type PersonalGoalResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	Status      string     `json:"status"`
	rest.Audit
}

func applyPersonalGoal(req *PersonalGoalRequest, e *domain.PersonalGoal) {
	e.EmployeeID = req.EmployeeID
	e.Title = req.Title
	e.Description = req.Description
	e.TargetDate = req.TargetDate
	e.Status = req.Status
}

func toPersonalGoalResponse(e *domain.PersonalGoal) PersonalGoalResponse {
	return PersonalGoalResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Title:       e.Title,
		Description: e.Description,
		TargetDate:  e.TargetDate,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}
