package domain

import (
	"time"

	"github.com/simp-lee/pagination"
)

// BaseModel is the common base struct for all HR domain models. Soft deletion
// is an explicit flag rather than gorm.DeletedAt so that the visibility rule
// stays in the store instead of behind implicit ORM behavior. Audit
// timestamps are stamped by the store, not by GORM auto-time: UpdatedAt must
// remain NULL until the first mutation after creation.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	CreatedBy *string    `gorm:"size:255" json:"createdBy"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	UpdatedBy *string    `gorm:"size:255" json:"updatedBy"`
	IsDeleted bool       `gorm:"default:false;index" json:"-"`
}

// Base exposes the embedded audit fields to generic code operating on any
// entity pointer.
func (m *BaseModel) Base() *BaseModel { return m }

// Auditable is implemented by every entity pointer via the embedded BaseModel.
type Auditable interface {
	Base() *BaseModel
}

// PageRequest holds pagination, sorting, and filtering parameters for list
// queries. Filters maps query-parameter names (e.g. "employeeId") to values;
// the store translates them to columns through a per-resource allow list.
type PageRequest struct {
	Page      int
	PageSize  int
	Sort      string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Filters   map[string]string
}

// PageResult is the wire envelope for every list endpoint. The store carries
// list results as pagination.Pagination internally; this type exists only to
// pin the JSON field names of the HTTP boundary.
type PageResult[T any] struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	Items      []T   `json:"items"`
}

// MapPage projects a page of entities into the wire envelope of response
// DTOs, preserving the pagination metadata. Items is never nil so empty
// pages serialize as [] rather than null.
func MapPage[T, R any](in *pagination.Pagination[T], toResponse func(*T) R) *PageResult[R] {
	items := make([]R, 0, len(in.Items))
	for i := range in.Items {
		items = append(items, toResponse(&in.Items[i]))
	}
	return &PageResult[R]{
		Total:      in.TotalItems,
		Page:       in.CurrentPage,
		PageSize:   in.ItemsPerPage,
		TotalPages: in.TotalPages,
		Items:      items,
	}
}
