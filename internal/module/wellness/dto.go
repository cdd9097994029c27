package wellness

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// ProgramRequest represents the input for creating or replacing a wellness program.
type ProgramRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity" binding:"gte=0"`
}

// ProgramResponse is the wire shape of a wellness program.
type ProgramResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity"`
	rest.Audit
}

func applyProgram(req *ProgramRequest, e *domain.WellnessProgram) {
	e.Name = req.Name
	e.Description = req.Description
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Capacity = req.Capacity
}

func toProgramResponse(e *domain.WellnessProgram) ProgramResponse {
	return ProgramResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Capacity:    e.Capacity,
		Audit:       rest.AuditOf(e),
	}
}

// MentalHealthResourceRequest represents the input for a mental health resource.
type MentalHealthResourceRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	URL         string `json:"url" binding:"omitempty,url,max=1000"`
	Contact     string `json:"contact" binding:"max=255"`
}

// MentalHealthResourceResponse is the wire shape of a mental health resource.
type MentalHealthResourceResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Contact     string `json:"contact"`
	rest.Audit
}

func applyMentalHealthResource(req *MentalHealthResourceRequest, e *domain.MentalHealthResource) {
	e.Title = req.Title
	e.Description = req.Description
	e.URL = req.URL
	e.Contact = req.Contact
}

func toMentalHealthResourceResponse(e *domain.MentalHealthResource) MentalHealthResourceResponse {
	return MentalHealthResourceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Contact:     e.Contact,
		Audit:       rest.AuditOf(e),
	}
}

// DEIResourceRequest represents the input for a DEI resource.
type DEIResourceRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	URL         string `json:"url" binding:"omitempty,url,max=1000"`
	Category    string `json:"category" binding:"max=100"`
}

// DEIResourceResponse is the wire shape of a DEI resource.
type DEIResourceResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	rest.Audit
}

func applyDEIResource(req *DEIResourceRequest, e *domain.DEIResource) {
	e.Title = req.Title
	e.Description = req.Description
	e.URL = req.URL
	e.Category = req.Category
}

func toDEIResourceResponse(e *domain.DEIResource) DEIResourceResponse {
	return DEIResourceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Category:    e.Category,
		Audit:       rest.AuditOf(e),
	}
}
