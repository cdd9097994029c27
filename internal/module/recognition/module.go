// Package recognition serves awards and nominations, including the
// transactional nomination award workflow.
package recognition

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/middleware"
	"github.com/hrkit/hrkit/internal/notifier"
	"github.com/hrkit/hrkit/internal/pkg"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for recognition.
type Module struct {
	awards      *store.Store[domain.Award, *domain.Award]
	nominations *store.Store[domain.Nomination, *domain.Nomination]
	service     *Service
}

// NewModule creates the recognition module with its stores and service.
func NewModule(db *gorm.DB, n notifier.Notifier, log *slog.Logger) *Module {
	employeeFilter := map[string]string{"employeeId": "employee_id"}

	awards := store.New[domain.Award](db, store.Options{
		SearchColumn: "title",
		DateColumn:   "awarded_at",
		Filters:      employeeFilter,
		SortFields:   []string{"id", "title", "awarded_at", "created_at"},
		DefaultSort:  "awarded_at:desc",
	})
	nominations := store.New[domain.Nomination](db, store.Options{
		SearchColumn: "title",
		Filters: map[string]string{
			"employeeId":  "employee_id",
			"nominatorId": "nominator_id",
			"status":      "status",
		},
		SortFields:  []string{"id", "title", "status", "created_at"},
		DefaultSort: "id:asc",
	})

	return &Module{
		awards:      awards,
		nominations: nominations,
		service:     NewService(db, awards, nominations, n, log),
	}
}

// RegisterRoutes registers the recognition API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	awards := rest.NewResource(m.awards, "/api/v1/awards",
		rest.SymmetricMapper(applyAward, toAwardResponse))
	awardsGroup := api.Group("/awards")
	awards.Mount(awardsGroup)
	awards.MountPurge(awardsGroup)

	nominations := rest.NewResource(m.nominations, "/api/v1/nominations",
		rest.SymmetricMapper(applyNomination, toNominationResponse))
	nominationsGroup := api.Group("/nominations")
	nominations.Mount(nominationsGroup)
	nominations.MountPurge(nominationsGroup)
	nominationsGroup.PATCH("/:id/award", m.awardNomination)
}

// awardNomination handles PATCH /nominations/:id/award.
func (m *Module) awardNomination(c *gin.Context) {
	id, ok := rest.ParseID(c)
	if !ok {
		return
	}

	award, err := m.service.AwardNomination(c.Request.Context(), id, middleware.PrincipalName(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, toAwardResponse(award))
}
