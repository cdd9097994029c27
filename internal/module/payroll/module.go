// Package payroll serves pay-period records and benefit enrollments.
package payroll

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrkit/hrkit/internal/domain"
	"github.com/hrkit/hrkit/internal/pkg"
	"github.com/hrkit/hrkit/internal/rest"
	"github.com/hrkit/hrkit/internal/store"
)

// Module implements the app.Module interface for payroll and benefits.
type Module struct {
	db       *gorm.DB
	payrolls *store.Store[domain.Payroll, *domain.Payroll]
	benefits *store.Store[domain.Benefit, *domain.Benefit]
}

// NewModule creates the payroll module with its stores.
func NewModule(db *gorm.DB) *Module {
	return &Module{
		db: db,
		payrolls: store.New[domain.Payroll](db, store.Options{
			DateColumn: "pay_date",
			Filters: map[string]string{
				"employeeId": "employee_id",
			},
			SortFields:  []string{"id", "pay_date", "net_pay", "created_at"},
			DefaultSort: "pay_date:desc",
		}),
		benefits: store.New[domain.Benefit](db, store.Options{
			SearchColumn: "name",
			Filters: map[string]string{
				"employeeId": "employee_id",
			},
			SortFields:  []string{"id", "name", "created_at"},
			DefaultSort: "id:asc",
		}),
	}
}

// RegisterRoutes registers the payroll and benefit API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	rest.NewResource(m.payrolls, "/api/v1/payrolls",
		rest.SymmetricMapper(applyPayroll, toPayrollResponse)).Mount(api.Group("/payrolls"))
	rest.NewResource(m.benefits, "/api/v1/benefits",
		rest.SymmetricMapper(applyBenefit, toBenefitResponse)).Mount(api.Group("/benefits"))

	api.GET("/payrolls/stats", m.payrollStats)
}

// PayrollStatsResponse aggregates pay across the non-deleted population.
type PayrollStatsResponse struct {
	Total         int64   `json:"total"`
	TotalNetPay   float64 `json:"totalNetPay"`
	AverageNetPay float64 `json:"averageNetPay"`
}

// payrollStats handles GET /api/v1/payrolls/stats.
func (m *Module) payrollStats(c *gin.Context) {
	var summary struct {
		Total         int64
		TotalNetPay   float64
		AverageNetPay float64
	}
	if err := m.db.WithContext(c.Request.Context()).Model(&domain.Payroll{}).
		Select("COUNT(*) AS total, COALESCE(SUM(net_pay), 0) AS total_net_pay, COALESCE(AVG(net_pay), 0) AS average_net_pay").
		Where("is_deleted = ?", false).
		Scan(&summary).Error; err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "database error", err))
		return
	}

	pkg.OK(c, PayrollStatsResponse{
		Total:         summary.Total,
		TotalNetPay:   summary.TotalNetPay,
		AverageNetPay: summary.AverageNetPay,
	})
}
