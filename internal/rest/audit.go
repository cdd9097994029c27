package rest

import (
	"time"

	"github.com/hrkit/hrkit/internal/domain"
)

// Audit is the audit block embedded in every response DTO.
type Audit struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy *string    `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt"`
	UpdatedBy *string    `json:"updatedBy"`
}

// AuditOf projects an entity's audit fields.
func AuditOf(e domain.Auditable) Audit {
	b := e.Base()
	return Audit{
		CreatedAt: b.CreatedAt,
		CreatedBy: b.CreatedBy,
		UpdatedAt: b.UpdatedAt,
		UpdatedBy: b.UpdatedBy,
	}
}
