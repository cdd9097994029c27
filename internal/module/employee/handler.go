package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/pkg"
)

// StatsResponse aggregates headcount across the non-deleted population.
type StatsResponse struct {
	Total        int64                 `json:"total"`
	ByDepartment []DepartmentHeadcount `json:"byDepartment"`
}

// DepartmentHeadcount is one headcount bucket. A nil DepartmentID bucket
// counts employees not assigned to any department.
type DepartmentHeadcount struct {
	DepartmentID *uint `json:"departmentId"`
	Count        int64 `json:"count"`
}

// stats handles GET /api/v1/employees/stats.
func (m *Module) stats(c *gin.Context) {
	ctx := c.Request.Context()

	var total int64
	if err := m.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("is_deleted = ?", false).
		Count(&total).Error; err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "database error", err))
		return
	}

	byDepartment := []DepartmentHeadcount{}
	if err := m.db.WithContext(ctx).Model(&domain.Employee{}).
		Select("department_id, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("department_id").
		Scan(&byDepartment).Error; err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "database error", err))
		return
	}

	pkg.OK(c, StatsResponse{Total: total, ByDepartment: byDepartment})
}
