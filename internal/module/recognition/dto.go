package recognition

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// AwardRequest represents the input for creating or replacing an award.
type AwardRequest struct {
	EmployeeID   uint       `json:"employeeId" binding:"required"`
	Title        string     `json:"title" binding:"required,max=255"`
	Description  string     `json:"description" binding:"max=1000"`
	AwardedAt    *time.Time `json:"awardedAt"`
	NominationID *uint      `json:"nominationId"`
}

// AwardResponse is the wire shape of an award.
type AwardResponse struct {
	ID           uint       `json:"id"`
	EmployeeID   uint       `json:"employeeId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AwardedAt    *time.Time `json:"awardedAt"`
	NominationID *uint      `json:"nominationId"`
	rest.Audit
}

func applyAward(req *AwardRequest, e *domain.Award) {
	e.EmployeeID = req.EmployeeID
	e.Title = req.Title
	e.Description = req.Description
	e.AwardedAt = req.AwardedAt
	e.NominationID = req.NominationID
}

func toAwardResponse(e *domain.Award) AwardResponse {
	return AwardResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Title:        e.Title,
		Description:  e.Description,
		AwardedAt:    e.AwardedAt,
		NominationID: e.NominationID,
		Audit:        rest.AuditOf(e),
	}
}

// NominationRequest represents the input for creating or replacing a nomination.
type NominationRequest struct {
	EmployeeID  uint   `json:"employeeId" binding:"required"`
	NominatorID *uint  `json:"nominatorId"`
	Title       string `json:"title" binding:"required,max=255"`
	Reason      string `json:"reason" binding:"max=2000"`
	Status      string `json:"status" binding:"max=50"`
}

// NominationResponse is the wire shape of a nomination.
type NominationResponse struct {
	ID          uint   `json:"id"`
	EmployeeID  uint   `json:"employeeId"`
	NominatorID *uint  `json:"nominatorId"`
	Title       string `json:"title"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	rest.Audit
}

func applyNomination(req *NominationRequest, e *domain.Nomination) {
	e.EmployeeID = req.EmployeeID
	e.NominatorID = req.NominatorID
	e.Title = req.Title
	e.Reason = req.Reason
	e.Status = req.Status
	if e.Status == "" {
		e.Status = domain.NominationPending
	}
}

func toNominationResponse(e *domain.Nomination) NominationResponse {
	return NominationResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		NominatorID: e.NominatorID,
		Title:       e.Title,
		Reason:      e.Reason,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}
