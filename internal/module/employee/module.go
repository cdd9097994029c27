// Package employee serves the employee directory: employees, departments,
// and job roles.
package employee

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for the employee directory.
type Module struct {
	db          *gorm.DB
	employees   *store.Store[domain.Employee, *domain.Employee]
	departments *store.Store[domain.Department, *domain.Department]
	jobRoles    *store.Store[domain.JobRole, *domain.JobRole]
}

// NewModule creates the employee module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		db: db,
		employees: store.New[domain.Employee](db, store.Options{
			SearchColumn: "name",
			DateColumn:   "hire_date",
			Filters: map[string]string{
				"departmentId": "department_id",
				"jobRoleId":    "job_role_id",
			},
			SortFields:  []string{"id", "name", "hire_date", "salary", "created_at"},
			DefaultSort: "id:asc",
		}),
		departments: store.New[domain.Department](db, store.Options{
			SearchColumn: "name",
			SortFields:   []string{"id", "name", "created_at"},
			DefaultSort:  "id:asc",
		}),
		jobRoles: store.New[domain.JobRole](db, store.Options{
			SearchColumn: "title",
			SortFields:   []string{"id", "title", "created_at"},
			DefaultSort:  "id:asc",
		}),
	}
}

// RegisterRoutes registers the employee directory API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.employees, "/api/v1/employees",
		rest.SymmetricMapper(applyEmployee, toEmployeeResponse)).Mount(api.Group("/employees"))
	rest.NewResource(m.departments, "/api/v1/departments",
		rest.SymmetricMapper(applyDepartment, toDepartmentResponse)).Mount(api.Group("/departments"))
	rest.NewResource(m.jobRoles, "/api/v1/job-roles",
		rest.SymmetricMapper(applyJobRole, toJobRoleResponse)).Mount(api.Group("/job-roles"))

	api.GET("/employees/stats", m.stats)
}
