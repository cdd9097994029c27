// Package workplace serves grievances, policies, and incident reports.
package workplace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/notifier"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for workplace management.
type Module struct {
	db         *gorm.DB
	grievances *store.Store[domain.Grievance, *domain.Grievance]
	policies   *store.Store[domain.Policy, *domain.Policy]
	incidents  *store.Store[domain.Incident, *domain.Incident]
	notifier   notifier.Notifier
	log        *slog.Logger
}

// NewModule creates the workplace module with its stores.
func NewModule(db *gorm.DB, n notifier.Notifier, log *slog.Logger) *Module {
	if n == nil {
		n = notifier.Noop{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &Module{
		db: db,
		grievances: store.New[domain.Grievance](db, store.Options{
			SearchColumn: "subject",
			DateColumn:   "filed_at",
			Filters: map[string]string{
				"employeeId": "employee_id",
				"status":     "status",
			},
			SortFields:  []string{"id", "filed_at", "status", "created_at"},
			DefaultSort: "id:desc",
		}),
		policies: store.New[domain.Policy](db, store.Options{
			SearchColumn: "title",
			DateColumn:   "effective_from",
			Filters:      map[string]string{"category": "category"},
			SortFields:   []string{"id", "title", "effective_from", "created_at"},
			DefaultSort:  "id:asc",
		}),
		incidents: store.New[domain.Incident](db, store.Options{
			SearchColumn: "title",
			DateColumn:   "occurred_at",
			Filters: map[string]string{
				"employeeId": "employee_id",
				"severity":   "severity",
				"status":     "status",
			},
			SortFields:  []string{"id", "occurred_at", "severity", "created_at"},
			DefaultSort: "occurred_at:desc",
		}),
		notifier: n,
		log:      log,
	}
}

// RegisterRoutes registers the workplace API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.grievances, "/api/v1/grievances",
		rest.SymmetricMapper(applyGrievance, toGrievanceResponse)).Mount(api.Group("/grievances"))
	rest.NewResource(m.policies, "/api/v1/policies",
		rest.SymmetricMapper(applyPolicy, toPolicyResponse)).Mount(api.Group("/policies"))

	incidentMapper := rest.SymmetricMapper(applyIncident, toIncidentResponse)
	incidentMapper.AfterCreate = m.acknowledgeIncident
	rest.NewResource(m.incidents, "/api/v1/incidents", incidentMapper).Mount(api.Group("/incidents"))
}

// acknowledgeIncident emails the reporting employee that the incident was
// recorded. Best effort; a failed or impossible send never affects the create.
func (m *Module) acknowledgeIncident(_ context.Context, e *domain.Incident) {
	var emp domain.Employee
	if err := m.db.Where("is_deleted = ?", false).First(&emp, e.EmployeeID).Error; err != nil {
		m.log.Warn("incident acknowledgement skipped: employee lookup failed",
			slog.Uint64("employee_id", uint64(e.EmployeeID)), slog.Any("error", err))
		return
	}
	if emp.Email == "" {
		return
	}

	subject := fmt.Sprintf("Incident report received: %s", e.Title)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your incident report <strong>%s</strong> has been recorded and will be reviewed.</p>",
		emp.Name, e.Title)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := m.notifier.SendEmail(ctx, emp.Email, subject, body); err != nil {
			m.log.Warn("incident acknowledgement failed",
				slog.String("to", emp.Email), slog.Any("error", err))
		}
	}()
}
