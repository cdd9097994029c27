// Package timeoff serves attendance tracking and leave requests.
package timeoff

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for attendance and leave.
type Module struct {
	db         *gorm.DB
	attendance *store.Store[domain.Attendance, *domain.Attendance]
	leaves     *store.Store[domain.Leave, *domain.Leave]
}

// NewModule creates the timeoff module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		db: db,
		attendance: store.New[domain.Attendance](db, store.Options{
			DateColumn: "date",
			Filters: map[string]string{
				"employeeId": "employee_id",
			},
			SortFields:  []string{"id", "date", "hours_worked", "created_at"},
			DefaultSort: "date:desc",
		}),
		leaves: store.New[domain.Leave](db, store.Options{
			SearchColumn: "leave_type",
			DateColumn:   "start_date",
			Filters: map[string]string{
				"employeeId": "employee_id",
			},
			SortFields:  []string{"id", "start_date", "end_date", "created_at"},
			DefaultSort: "start_date:desc",
		}),
	}
}

// RegisterRoutes registers the attendance and leave API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.attendance, "/api/v1/attendance",
		rest.SymmetricMapper(applyAttendance, toAttendanceResponse)).Mount(api.Group("/attendance"))
	rest.NewResource(m.leaves, "/api/v1/leaves",
		rest.SymmetricMapper(applyLeave, toLeaveResponse)).Mount(api.Group("/leaves"))

	api.GET("/attendance/stats", m.attendanceStats)
}
