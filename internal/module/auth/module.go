// Package auth serves registration, login, and the current-principal lookup.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/middleware"
)

// Module implements the app.Module interface for authentication.
type Module struct {
	handler *Handler
}

// NewModule creates a new auth Module with the given handler.
// Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers auth API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/login", m.handler.Login)
	auth.POST("/register", m.handler.Register)
	auth.GET("/me", middleware.RequireAuth(), m.handler.Me)
}
