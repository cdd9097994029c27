// Package wellness serves wellness programs and support resources.
package wellness

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for wellness offerings.
type Module struct {
	programs     *store.Store[domain.WellnessProgram, *domain.WellnessProgram]
	mentalHealth *store.Store[domain.MentalHealthResource, *domain.MentalHealthResource]
	dei          *store.Store[domain.DEIResource, *domain.DEIResource]
}

// NewModule creates the wellness module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		programs: store.New[domain.WellnessProgram](db, store.Options{
			SearchColumn: "name",
			DateColumn:   "start_date",
			SortFields:   []string{"id", "name", "start_date", "created_at"},
			DefaultSort:  "id:asc",
		}),
		mentalHealth: store.New[domain.MentalHealthResource](db, store.Options{
			SearchColumn: "title",
			SortFields:   []string{"id", "title", "created_at"},
			DefaultSort:  "id:asc",
		}),
		dei: store.New[domain.DEIResource](db, store.Options{
			SearchColumn: "title",
			Filters:      map[string]string{"category": "category"},
			SortFields:   []string{"id", "title", "category", "created_at"},
			DefaultSort:  "id:asc",
		}),
	}
}

// RegisterRoutes registers the wellness API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.programs, "/api/v1/wellness-programs",
		rest.SymmetricMapper(applyProgram, toProgramResponse)).Mount(api.Group("/wellness-programs"))
	rest.NewResource(m.mentalHealth, "/api/v1/mental-health-resources",
		rest.SymmetricMapper(applyMentalHealthResource, toMentalHealthResourceResponse)).Mount(api.Group("/mental-health-resources"))
	rest.NewResource(m.dei, "/api/v1/dei-resources",
		rest.SymmetricMapper(applyDEIResource, toDEIResourceResponse)).Mount(api.Group("/dei-resources"))
}
