// Package performance serves performance reviews and goal tracking.
package performance

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for performance management.
type Module struct {
	reviews       *store.Store[domain.PerformanceReview, *domain.PerformanceReview]
	okrGoals      *store.Store[domain.OKRGoal, *domain.OKRGoal]
	personalGoals *store.Store[domain.PersonalGoal, *domain.PersonalGoal]
}

// NewModule creates the performance module with its stores.
func NewModule(db *gorm.DB) *Module {
	employeeFilter := map[string]string{"employeeId": "employee_id"}

	return &Module{
		reviews: store.New[domain.PerformanceReview](db, store.Options{
			DateColumn:  "review_date",
			Filters:     employeeFilter,
			SortFields:  []string{"id", "review_date", "rating", "created_at"},
			DefaultSort: "review_date:desc",
		}),
		okrGoals: store.New[domain.OKRGoal](db, store.Options{
			SearchColumn: "objective",
			Filters:      employeeFilter,
			SortFields:   []string{"id", "progress", "created_at"},
			DefaultSort:  "id:asc",
		}),
		personalGoals: store.New[domain.PersonalGoal](db, store.Options{
			SearchColumn: "title",
			Filters:      employeeFilter,
			SortFields:   []string{"id", "title", "created_at"},
			DefaultSort:  "id:asc",
		}),
	}
}

// RegisterRoutes registers the performance API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.reviews, "/api/v1/performance-reviews",
		rest.SymmetricMapper(applyReview, toReviewResponse)).Mount(api.Group("/performance-reviews"))
	rest.NewResource(m.okrGoals, "/api/v1/okr-goals",
		rest.SymmetricMapper(applyOKRGoal, toOKRGoalResponse)).Mount(api.Group("/okr-goals"))
	rest.NewResource(m.personalGoals, "/api/v1/personal-goals",
		rest.SymmetricMapper(applyPersonalGoal, toPersonalGoalResponse)).Mount(api.Group("/personal-goals"))
}
