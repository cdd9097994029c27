package engagement

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
)

// AnnouncementRequest represents the input for creating or replacing an announcement.
type AnnouncementRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Body        string     `json:"body" binding:"max=4000"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// AnnouncementResponse is the wire shape of an announcement.
type AnnouncementResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Pinned      bool       `json:"pinned"`
	PublishedAt *time.Time `json:"publishedAt"`
	rest.Audit
}

func applyAnnouncement(req *AnnouncementRequest, e *domain.Announcement) {
	e.Title = req.Title
	e.Body = req.Body
	e.Pinned = req.Pinned
	e.PublishedAt = req.PublishedAt
}

func toAnnouncementResponse(e *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          e.ID,
		Title:       e.Title,
		Body:        e.Body,
		Pinned:      e.Pinned,
		PublishedAt: e.PublishedAt,
		Audit:       rest.AuditOf(e),
	}
}

// MessageRequest represents the input for creating or replacing a message.
type MessageRequest struct {
	SenderID    uint   `json:"senderId" binding:"required"`
	RecipientID uint   `json:"recipientId" binding:"required"`
	Subject     string `json:"subject" binding:"max=255"`
	Body        string `json:"body" binding:"max=4000"`
}

// MessageResponse is the wire shape of a message.
type MessageResponse struct {
	ID          uint       `json:"id"`
	SenderID    uint       `json:"senderId"`
	RecipientID uint       `json:"recipientId"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"readAt"`
	rest.Audit
}

func applyMessage(req *MessageRequest, e *domain.Message) {
	e.SenderID = req.SenderID
	e.RecipientID = req.RecipientID
	e.Subject = req.Subject
	e.Body = req.Body
}

func toMessageResponse(e *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          e.ID,
		SenderID:    e.SenderID,
		RecipientID: e.RecipientID,
		Subject:     e.Subject,
		Body:        e.Body,
		ReadAt:      e.ReadAt,
		Audit:       rest.AuditOf(e),
	}
}

// FeedbackRequest represents the input for creating or replacing feedback.
type FeedbackRequest struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	Category   string `json:"category" binding:"max=100"`
	Body       string `json:"body" binding:"required,max=4000"`
	Anonymous  bool   `json:"anonymous"`
}

// FeedbackResponse is the wire shape of a feedback entry.
type FeedbackResponse struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employeeId"`
	Category   string `json:"category"`
	Body       string `json:"body"`
	Anonymous  bool   `json:"anonymous"`
	rest.Audit
}

func applyFeedback(req *FeedbackRequest, e *domain.Feedback) {
	e.EmployeeID = req.EmployeeID
	e.Category = req.Category
	e.Body = req.Body
	e.Anonymous = req.Anonymous
}

func toFeedbackResponse(e *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Category:   e.Category,
		Body:       e.Body,
		Anonymous:  e.Anonymous,
		Audit:      rest.AuditOf(e),
	}
}

// SurveyRequest represents the input for creating or replacing a survey.
type SurveyRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	OpensAt     *time.Time `json:"opensAt"`
	ClosesAt    *time.Time `json:"closesAt"`
	Status      string     `json:"status" binding:"max=50"`
}

// SurveyResponse is the wire shape of a survey.
type SurveyResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OpensAt     *time.Time `json:"opensAt"`
	ClosesAt    *time.Time `json:"closesAt"`
	Status      string     `json:"status"`
	rest.Audit
}

func applySurvey(req *SurveyRequest, e *domain.Survey) {
	e.Title = req.Title
	e.Description = req.Description
	e.OpensAt = req.OpensAt
	e.ClosesAt = req.ClosesAt
	e.Status = req.Status
}

func toSurveyResponse(e *domain.Survey) SurveyResponse {
	return SurveyResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		OpensAt:     e.OpensAt,
		ClosesAt:    e.ClosesAt,
		Status:      e.Status,
		Audit:       rest.AuditOf(e),
	}
}
