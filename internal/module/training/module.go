// Package training serves training courses and employee enrollments.
package training

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for training.
type Module struct {
	trainings   *store.Store[domain.Training, *domain.Training]
	enrollments *store.Store[domain.EmployeeTraining, *domain.EmployeeTraining]
}

// NewModule creates the training module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		trainings: store.New[domain.Training](db, store.Options{
			SearchColumn: "title",
			DateColumn:   "start_date",
			SortFields:   []string{"id", "title", "start_date", "created_at"},
			DefaultSort:  "id:asc",
		}),
		enrollments: store.New[domain.EmployeeTraining](db, store.Options{
			Filters: map[string]string{
				"employeeId": "employee_id",
				"trainingId": "training_id",
			},
			SortFields:  []string{"id", "score", "created_at"},
			DefaultSort: "id:asc",
		}),
	}
}

// RegisterRoutes registers the training API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.trainings, "/api/v1/trainings",
		rest.SymmetricMapper(applyTraining, toTrainingResponse)).Mount(api.Group("/trainings"))
	rest.NewResource(m.enrollments, "/api/v1/employee-trainings",
		rest.SymmetricMapper(applyEnrollment, toEnrollmentResponse)).Mount(api.Group("/employee-trainings"))
}
