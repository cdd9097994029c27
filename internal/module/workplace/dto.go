package workplace

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// GrievanceRequest represents the input for creating or replacing a grievance.
type GrievanceRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	Subject     string     `json:"subject" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=4000"`
	FiledAt     *time.Time `json:"filedAt"`
	Status      string     `json:"status" binding:"max=50"`
	Resolution  string     `json:"resolution" binding:"max=2000"`
}

// GrievanceResponse is the wire shape of a grievance.
type GrievanceResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	FiledAt     *time.Time `json:"filedAt"`
	Status      string     `json:"status"`
	Resolution  string     `json:"resolution"`
	rest.Audit
}

func applyGrievance(req *GrievanceRequest, e *domain.Grievance) {
	e.EmployeeID = req.EmployeeID
	e.Subject = req.Subject
	e.Description = req.Description
	e.FiledAt = req.FiledAt
	e.Status = req.Status
	e.Resolution = req.Resolution
}

func toGrievanceResponse(e *domain.Grievance) GrievanceResponse {
	return GrievanceResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Subject:     e.Subject,
		Description: e.Description,
		FiledAt:     e.FiledAt,
		Status:      e.Status,
		Resolution:  e.Resolution,
		Audit:       rest.AuditOf(e),
	}
}

// PolicyRequest represents the input for creating or replacing a policy.
type PolicyRequest struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Body          string     `json:"body" binding:"max=8000"`
	Category      string     `json:"category" binding:"max=100"`
	EffectiveFrom *time.Time `json:"effectiveFrom"`
}

// PolicyResponse is the wire shape of a policy.
type PolicyResponse struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Category      string     `json:"category"`
	EffectiveFrom *time.Time `json:"effectiveFrom"`
	rest.Audit
}

func applyPolicy(req *PolicyRequest, e *domain.Policy) {
	e.Title = req.Title
	e.Body = req.Body
	e.Category = req.Category
	e.EffectiveFrom = req.EffectiveFrom
}

func toPolicyResponse(e *domain.Policy) PolicyResponse {
	return PolicyResponse{
		ID:            e.ID,
		Title:         e.Title,
		Body:          e.Body,
		Category:      e.Category,
		EffectiveFrom: e.EffectiveFrom,
		Audit:         rest.AuditOf(e),
	}
}

// IncidentRequest represents the input for creating or replacing an incident.
type IncidentRequest struct {
	EmployeeID  uint       `json:"employeeId" binding:"required"`
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=4000"`
	OccurredAt  *time.Time `json:"occurredAt"`
	Severity    string     `json:"severity" binding:"max=50"`
	Status      string     `json:"status" binding:"max=50"`
}

// IncidentResponse is the wire shape of an incident.
type IncidentResponse struct {
	ID          uint       `json:"id"`
	EmployeeID  uint       `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OccurredAt  *time.Time `json:"occurredAt"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	rest.Audit
}

func applyIncident(req *IncidentRequest, e *domain.Incident) {
	e.EmployeeID = req.EmployeeID
	e.Title = req.Title
	e.Description = req.Description
	e.OccurredAt = req.OccurredAt
	e.Severity = req.Severity
	e.Status = req.Status
}

func toIncidentResponse(e *domain.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Title:       e.Title,
		Description: e.Description,
		OccurredAt:  e.OccurredAt,
		Severity:    e.Severity,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}
