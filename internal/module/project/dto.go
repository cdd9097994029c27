package project

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// ProjectRequest represents the input for creating or replacing a project.
type ProjectRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `json:"status" binding:"max=50"`
}

// ProjectResponse is the wire shape of a project.
type ProjectResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `json:"status"`
	rest.Audit
}

func applyProject(req *ProjectRequest, e *domain.Project) {
	e.Name = req.Name
	e.Description = req.Description
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Status = req.Status
}

func toProjectResponse(e *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}

// AssignmentRequest represents the input for assigning an employee to a project.
type AssignmentRequest struct {
	EmployeeID uint       `json:"employeeId" binding:"required"`
	ProjectID  uint       `json:"projectId" binding:"required"`
	Role       string     `json:"role" binding:"max=100"`
	AssignedAt *time.Time `json:"assignedAt"`
}

// AssignmentResponse is the wire shape of a project assignment.
type AssignmentResponse struct {
	ID         uint       `json:"id"`
	EmployeeID uint       `json:"employeeId"`
	ProjectID  uint       `json:"projectId"`
	Role       string     `json:"role"`
	AssignedAt *time.Time `json:"assignedAt"`
	rest.Audit
}

func applyAssignment(req *AssignmentRequest, e *domain.EmployeeProject) {
	e.EmployeeID = req.EmployeeID
	e.ProjectID = req.ProjectID
	e.Role = req.Role
	e.AssignedAt = req.AssignedAt
}

func toAssignmentResponse(e *domain.EmployeeProject) AssignmentResponse {
	return AssignmentResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		ProjectID:  e.ProjectID,
		Role:       e.Role,
		AssignedAt: e.AssignedAt,
		Audit:      rest.AuditOf(e),
	}
}
