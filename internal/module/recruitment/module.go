// Package recruitment serves job postings, applications, and interviews.
package recruitment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for recruitment.
type Module struct {
	postings     *store.Store[domain.JobPosting, *domain.JobPosting]
	applications *store.Store[domain.Application, *domain.Application]
	interviews   *store.Store[domain.Interview, *domain.Interview]
}

// NewModule creates the recruitment module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		postings: store.New[domain.JobPosting](db, store.Options{
			SearchColumn: "title",
			DateColumn:   "posted_at",
			Filters: map[string]string{
				"departmentId": "department_id",
			},
			SortFields:  []string{"id", "title", "posted_at", "created_at"},
			DefaultSort: "posted_at:desc",
		}),
		applications: store.New[domain.Application](db, store.Options{
			SearchColumn: "candidate_name",
			DateColumn:   "applied_at",
			Filters: map[string]string{
				"jobPostingId": "job_posting_id",
				"status":       "status",
			},
			SortFields:  []string{"id", "candidate_name", "applied_at", "created_at"},
			DefaultSort: "id:asc",
		}),
		interviews: store.New[domain.Interview](db, store.Options{
			DateColumn: "scheduled_at",
			Filters: map[string]string{
				"applicationId": "application_id",
				"interviewerId": "interviewer_id",
			},
			SortFields:  []string{"id", "scheduled_at", "created_at"},
			DefaultSort: "scheduled_at:desc",
		}),
	}
}

// RegisterRoutes registers the recruitment API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.postings, "/api/v1/job-postings",
		rest.SymmetricMapper(applyJobPosting, toJobPostingResponse)).Mount(api.Group("/job-postings"))
	rest.NewResource(m.applications, "/api/v1/applications",
		rest.SymmetricMapper(applyApplication, toApplicationResponse)).Mount(api.Group("/applications"))
	rest.NewResource(m.interviews, "/api/v1/interviews",
		rest.SymmetricMapper(applyInterview, toInterviewResponse)).Mount(api.Group("/interviews"))
}
