// Package rest binds a store to the uniform HTTP contract every HR resource
// shares: filtered, paginated listing; get-by-id; create with Location;
// full update of business fields; soft delete; optional admin purge.
// Per-resource shape differences live entirely in the Mapper functions.
package rest

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/middleware"
	"github.com/hrkit/hrkit/internal/pkg"
	"github.com/hrkit/hrkit/internal/store"
)

// Mapper holds the field-selector functions that translate between wire DTOs
// and the persisted entity for one resource.
type Mapper[T, C, U, R any] struct {
	// FromCreate builds a new entity from a bound create request.
	FromCreate func(req *C) T

	// ApplyUpdate overwrites the entity's business fields from a bound
	// update request. Audit and identity fields are server-controlled and
	// never touched here.
	ApplyUpdate func(req *U, e *T)

	// ToResponse projects an entity to its response DTO.
	ToResponse func(e *T) R

	// AfterCreate, when set, runs after a successful insert. Used for
	// fire-and-forget side effects such as notifications; it cannot fail
	// the request.
	AfterCreate func(ctx context.Context, e *T)
}

// SymmetricMapper builds a Mapper for resources whose create and full-update
// requests share one shape, which is the common case here.
func SymmetricMapper[T, Q, R any](apply func(req *Q, e *T), toResponse func(e *T) R) Mapper[T, Q, Q, R] {
	return Mapper[T, Q, Q, R]{
		FromCreate: func(q *Q) T {
			var e T
			apply(q, &e)
			return e
		},
		ApplyUpdate: apply,
		ToResponse:  toResponse,
	}
}

// Resource is a generic CRUD endpoint group over one store.
type Resource[T any, P interface {
	*T
	domain.Auditable
}, C, U, R any] struct {
	store *store.Store[T, P]
	base  string
	m     Mapper[T, C, U, R]
}

// NewResource creates a Resource. base is the absolute collection path used
// for Location headers, e.g. "/api/v1/leaves".
func NewResource[T any, P interface {
	*T
	domain.Auditable
}, C, U, R any](st *store.Store[T, P], base string, m Mapper[T, C, U, R]) *Resource[T, P, C, U, R] {
	return &Resource[T, P, C, U, R]{store: st, base: base, m: m}
}

// Mount registers the five CRUD routes on the given group.
func (r *Resource[T, P, C, U, R]) Mount(g *gin.RouterGroup) {
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.POST("", r.Create)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
}

// MountPurge registers the admin-only physical delete route.
func (r *Resource[T, P, C, U, R]) MountPurge(g *gin.RouterGroup) {
	g.DELETE("/:id/purge", middleware.RequireRole("admin"), r.Purge)
}

// List handles GET /{collection}.
func (r *Resource[T, P, C, U, R]) List(c *gin.Context) {
	req := pkg.ParseListQuery(c)

	result, err := r.store.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, domain.MapPage(result, r.m.ToResponse))
}

// Get handles GET /{collection}/:id.
func (r *Resource[T, P, C, U, R]) Get(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	e, err := r.store.GetByID(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, r.m.ToResponse((*T)(e)))
}

// Create handles POST /{collection}.
func (r *Resource[T, P, C, U, R]) Create(c *gin.Context) {
	var req C
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e := r.m.FromCreate(&req)
	if err := r.store.Create(c.Request.Context(), P(&e), middleware.PrincipalName(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	if r.m.AfterCreate != nil {
		r.m.AfterCreate(c.Request.Context(), &e)
	}

	id := P(&e).Base().ID
	pkg.Created(c, r.base+"/"+strconv.FormatUint(uint64(id), 10), r.m.ToResponse(&e))
}

// Update handles PUT /{collection}/:id.
func (r *Resource[T, P, C, U, R]) Update(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	var req U
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	e, err := r.store.Update(c.Request.Context(), id, middleware.PrincipalName(c), func(p P) {
		r.m.ApplyUpdate(&req, (*T)(p))
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.OK(c, r.m.ToResponse((*T)(e)))
}

// Delete handles DELETE /{collection}/:id (soft delete).
func (r *Resource[T, P, C, U, R]) Delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	if err := r.store.SoftDelete(c.Request.Context(), id, middleware.PrincipalName(c)); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.NoContent(c)
}

// Purge handles DELETE /{collection}/:id/purge (admin physical delete).
func (r *Resource[T, P, C, U, R]) Purge(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	if err := r.store.Purge(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.NoContent(c)
}

// ParseID reads the :id path parameter, answering 400 for non-numeric
// values. Exported for module handlers that add sub-action routes.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id", nil))
		return 0, false
	}
	return uint(id), true
}
