// Package engagement serves announcements, messages, feedback, and surveys.
package engagement

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/middleware"
	"github.com/hrkit/hrkit/internal/pkg"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for employee engagement.
type Module struct {
	announcements *store.Store[domain.Announcement, *domain.Announcement]
	messages      *store.Store[domain.Message, *domain.Message]
	feedback      *store.Store[domain.Feedback, *domain.Feedback]
	surveys       *store.Store[domain.Survey, *domain.Survey]
}

// NewModule creates the engagement module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		announcements: store.New[domain.Announcement](db, store.Options{
			SearchColumn: "title",
			DateColumn:   "published_at",
			SortFields:   []string{"id", "title", "published_at", "created_at"},
			DefaultSort:  "published_at:desc",
		}),
		messages: store.New[domain.Message](db, store.Options{
			SearchColumn: "subject",
			Filters: map[string]string{
				"senderId":    "sender_id",
				"recipientId": "recipient_id",
			},
			SortFields:  []string{"id", "created_at"},
			DefaultSort: "id:desc",
		}),
		feedback: store.New[domain.Feedback](db, store.Options{
			SearchColumn: "body",
			Filters: map[string]string{
				"employeeId": "employee_id",
				"category":   "category",
			},
			SortFields:  []string{"id", "category", "created_at"},
			DefaultSort: "id:desc",
		}),
		surveys: store.New[domain.Survey](db, store.Options{
			SearchColumn: "title",
			Filters:      map[string]string{"status": "status"},
			SortFields:   []string{"id", "title", "status", "created_at"},
			DefaultSort:  "id:asc",
		}),
	}
}

// RegisterRoutes registers the engagement API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	announcements := api.Group("/announcements")
	rest.NewResource(m.announcements, "/api/v1/announcements",
		rest.SymmetricMapper(applyAnnouncement, toAnnouncementResponse)).Mount(announcements)
	announcements.PATCH("/:id/pin", m.togglePin)

	messages := api.Group("/messages")
	rest.NewResource(m.messages, "/api/v1/messages",
		rest.SymmetricMapper(applyMessage, toMessageResponse)).Mount(messages)
	messages.PATCH("/:id/read", m.markRead)

	rest.NewResource(m.feedback, "/api/v1/feedback",
		rest.SymmetricMapper(applyFeedback, toFeedbackResponse)).Mount(api.Group("/feedback"))
	rest.NewResource(m.surveys, "/api/v1/surveys",
		rest.SymmetricMapper(applySurvey, toSurveyResponse)).Mount(api.Group("/surveys"))
}

// togglePin handles PATCH /announcements/:id/pin. There is no separate unpin
// route; the transition flips the flag.
func (m *Module) togglePin(c *gin.Context) {
	id, ok := rest.ParseID(c)
	if !ok {
		return
	}

	e, err := m.announcements.Update(c.Request.Context(), id, middleware.PrincipalName(c),
		func(a *domain.Announcement) { a.Pinned = !a.Pinned })
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, toAnnouncementResponse(e))
}

// markRead handles PATCH /messages/:id/read. Marking an already-read message
// keeps the original ReadAt, so repeat calls are harmless.
func (m *Module) markRead(c *gin.Context) {
	id, ok := rest.ParseID(c)
	if !ok {
		return
	}

	e, err := m.messages.Update(c.Request.Context(), id, middleware.PrincipalName(c),
		func(msg *domain.Message) {
			if msg.ReadAt == nil {
				now := time.Now().UTC()
				msg.ReadAt = &now
			}
		})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, toMessageResponse(e))
}
