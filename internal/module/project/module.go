// Package project serves projects and employee project assignments.
package project

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for project tracking.
type Module struct {
	projects    *store.Store[domain.Project, *domain.Project]
	assignments *store.Store[domain.EmployeeProject, *domain.EmployeeProject]
}

// NewModule creates the project module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		projects: store.New[domain.Project](db, store.Options{
			SearchColumn: "name",
			DateColumn:   "start_date",
			Filters:      map[string]string{"status": "status"},
			SortFields:   []string{"id", "name", "start_date", "status", "created_at"},
			DefaultSort:  "id:asc",
		}),
		assignments: store.New[domain.EmployeeProject](db, store.Options{
			DateColumn: "assigned_at",
			Filters: map[string]string{
				"employeeId": "employee_id",
				"projectId":  "project_id",
			},
			SortFields:  []string{"id", "assigned_at", "created_at"},
			DefaultSort: "id:asc",
		}),
	}
}

// RegisterRoutes registers the project API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	projects := rest.NewResource(m.projects, "/api/v1/projects",
		rest.SymmetricMapper(applyProject, toProjectResponse))
	projectsGroup := api.Group("/projects")
	projects.Mount(projectsGroup)
	projects.MountPurge(projectsGroup)

	rest.NewResource(m.assignments, "/api/v1/employee-projects",
		rest.SymmetricMapper(applyAssignment, toAssignmentResponse)).Mount(api.Group("/employee-projects"))
}
