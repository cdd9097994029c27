// Package store provides the one soft-deleting, paginated, filterable
// repository implementation shared by every HR resource. Per-resource
// behavior (search column, date column, foreign-key filters, sort allow
// list) is configuration, not code.
package store

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/simp-lee/pagination"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Options configures the query surface of one resource.
type Options struct {
	// SearchColumn is the designated text column the "q" parameter matches
	// against with a substring LIKE. Empty disables search.
	SearchColumn string

	// DateColumn is the designated date column bounded inclusively by
	// startDate/endDate. Empty disables range filtering.
	DateColumn string

	// Filters maps allowed query-parameter names to columns for exact-match
	// filtering, e.g. {"employeeId": "employee_id"}. Unknown parameters are
	// silently ignored.
	Filters map[string]string

	// SortFields is the allow list for the "sort" parameter ("field:asc" or
	// "field:desc"). Disallowed or malformed values fall back to DefaultSort.
	SortFields []string

	// DefaultSort orders listings when no valid sort is requested.
	// Empty means primary-key order.
	DefaultSort string
}

// Store is a GORM-backed repository for one entity type embedding
// domain.BaseModel. All read paths exclude soft-deleted rows; GetByIDAny is
// the single escape hatch for admin paths.
type Store[T any, P interface {
	*T
	domain.Auditable
}] struct {
	db   *gorm.DB
	opts Options
}

// New creates a Store for T backed by the given database.
func New[T any, P interface {
	*T
	domain.Auditable
}](db *gorm.DB, opts Options) *Store[T, P] {
	return &Store[T, P]{db: db, opts: opts}
}

// WithTx returns a Store bound to the given transaction handle. Used by
// composite operations that must commit multiple writes atomically.
func (s *Store[T, P]) WithTx(tx *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: tx, opts: s.opts}
}

// Create stamps audit fields and inserts the entity. The actor is the
// authenticated principal name; empty means a system-initiated write and
// leaves CreatedBy NULL.
func (s *Store[T, P]) Create(ctx context.Context, e P, actor string) error {
	b := e.Base()
	b.ID = 0
	b.CreatedAt = time.Now().UTC()
	b.CreatedBy = nilIfEmpty(actor)
	b.UpdatedAt = nil
	b.UpdatedBy = nil
	b.IsDeleted = false

	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID returns the entity with the given id, treating soft-deleted rows
// as absent.
func (s *Store[T, P]) GetByID(ctx context.Context, id uint) (P, error) {
	var e T
	err := s.db.WithContext(ctx).Where("is_deleted = ?", false).First(&e, id).Error
	if err != nil {
		var zero P
		return zero, mapError(err)
	}
	return P(&e), nil
}

// GetByIDAny returns the entity regardless of its soft-delete flag. Only the
// admin purge path uses it.
func (s *Store[T, P]) GetByIDAny(ctx context.Context, id uint) (P, error) {
	var e T
	err := s.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		var zero P
		return zero, mapError(err)
	}
	return P(&e), nil
}

// List returns one page of non-deleted rows matching the request, together
// with the total count of the filtered set. The total is computed before
// pagination so it is invariant across pages.
func (s *Store[T, P]) List(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[T], error) {
	var t T
	base := s.db.WithContext(ctx).Model(&t).
		Where("is_deleted = ?", false).
		Scopes(s.filter(req), s.search(req), s.dateRange(req))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var items []T
	if err := base.Scopes(s.sort(req), paginate(req)).Find(&items).Error; err != nil {
		return nil, mapError(err)
	}

	p := pagination.NewPaginator(
		pagination.WithKnownTotal[T](total),
		pagination.WithItemsPerPage[T](req.PageSize),
		pagination.WithSliceCallback[T](func(context.Context, int, int) ([]T, error) {
			return items, nil
		}),
	)
	return p.Paginate(ctx, req.Page)
}

// Update loads the entity, applies mutate to its business fields, stamps the
// Updated audit fields, and saves. Absent or soft-deleted rows yield NotFound.
func (s *Store[T, P]) Update(ctx context.Context, id uint, actor string, mutate func(P)) (P, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		var zero P
		return zero, err
	}

	mutate(e)
	stampUpdate(e.Base(), actor)

	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		var zero P
		return zero, mapError(err)
	}
	return e, nil
}

// SoftDelete marks the entity deleted and stamps the Updated audit fields.
// A second delete of the same id reports NotFound, making deletion
// idempotent-to-absence.
func (s *Store[T, P]) SoftDelete(ctx context.Context, id uint, actor string) error {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	b := e.Base()
	b.IsDeleted = true
	stampUpdate(b, actor)

	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Purge physically removes the row, soft-deleted or not. It is the explicit
// administrative counterpart to SoftDelete and is never routed without a
// role check.
func (s *Store[T, P]) Purge(ctx context.Context, id uint) error {
	var t T
	result := s.db.WithContext(ctx).Delete(&t, id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func stampUpdate(b *domain.BaseModel, actor string) {
	now := time.Now().UTC()
	b.UpdatedAt = &now
	b.UpdatedBy = nilIfEmpty(actor)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// filter applies exact-match conditions for allow-listed query parameters.
func (s *Store[T, P]) filter(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for param, value := range req.Filters {
			column, ok := s.opts.Filters[param]
			if !ok || !validFieldName.MatchString(column) {
				continue
			}
			db = db.Where(column+" = ?", value)
		}
		return db
	}
}

// search applies a substring match on the resource's designated text column.
func (s *Store[T, P]) search(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.Search == "" || s.opts.SearchColumn == "" {
			return db
		}
		if !validFieldName.MatchString(s.opts.SearchColumn) {
			return db
		}
		return db.Where(s.opts.SearchColumn+" LIKE ?", "%"+req.Search+"%")
	}
}

// dateRange applies inclusive bounds on the resource's designated date column.
func (s *Store[T, P]) dateRange(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.opts.DateColumn == "" || !validFieldName.MatchString(s.opts.DateColumn) {
			return db
		}
		if req.StartDate != nil {
			db = db.Where(s.opts.DateColumn+" >= ?", *req.StartDate)
		}
		if req.EndDate != nil {
			db = db.Where(s.opts.DateColumn+" <= ?", *req.EndDate)
		}
		return db
	}
}

// sort applies ORDER BY from the request's "field:direction" value when the
// field is allow-listed, falling back to the resource default.
func (s *Store[T, P]) sort(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if clause, ok := s.sortClause(req.Sort); ok {
			return db.Order(clause)
		}
		if clause, ok := s.sortClause(s.opts.DefaultSort); ok {
			return db.Order(clause)
		}
		return db
	}
}

func (s *Store[T, P]) sortClause(sort string) (string, bool) {
	parts := strings.SplitN(sort, ":", 2)
	if len(parts) != 2 {
		return "", false
	}

	field := strings.TrimSpace(parts[0])
	direction := strings.TrimSpace(strings.ToLower(parts[1]))

	if direction != "asc" && direction != "desc" {
		return "", false
	}
	if !validFieldName.MatchString(field) {
		return "", false
	}
	if !slices.Contains(s.opts.SortFields, field) {
		return "", false
	}

	return field + " " + direction, true
}

// paginate applies LIMIT and OFFSET based on the page request.
func paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
