package timeoff

import (
	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/pkg"
)

// AttendanceStatsResponse aggregates attendance across the non-deleted population.
type AttendanceStatsResponse struct {
	Total        int64         `json:"total"`
	AverageHours float64       `json:"averageHours"`
	ByStatus     []StatusCount `json:"byStatus"`
}

// StatusCount is one status bucket.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// attendanceStats handles GET /api/v1/attendance/stats.
func (m *Module) attendanceStats(c *gin.Context) {
	ctx := c.Request.Context()

	var summary struct {
		Total        int64
		AverageHours float64
	}
	if err := m.db.WithContext(ctx).Model(&domain.Attendance{}).
		Select("COUNT(*) AS total, COALESCE(AVG(hours_worked), 0) AS average_hours").
		Where("is_deleted = ?", false).
		Scan(&summary).Error; err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "database error", err))
		return
	}

	byStatus := []StatusCount{}
	if err := m.db.WithContext(ctx).Model(&domain.Attendance{}).
		Select("status, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&byStatus).Error; err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "database error", err))
		return
	}

	pkg.OK(c, AttendanceStatsResponse{
		Total:        summary.Total,
		AverageHours: summary.AverageHours,
		ByStatus:     byStatus,
	})
}
