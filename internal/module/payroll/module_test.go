package payroll

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hrkit/hrkit/internal/domain"
)

func setupPayrollAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Payroll{}, &domain.Benefit{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	NewModule(db).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func seedPayroll(t *testing.T, r *gin.Engine, employeeID uint, netPay float64) {
	t.Helper()
	body := fmt.Sprintf(
		`{"employeeId":%d,"payDate":"2025-06-30T00:00:00Z","grossPay":%v,"netPay":%v}`,
		employeeID, netPay*1.3, netPay)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payrolls", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
	}
}

func getStats(t *testing.T, r *gin.Engine) PayrollStatsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}

	var stats PayrollStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	return stats
}

func TestPayrollStats(t *testing.T) {
	r := setupPayrollAPI(t)

	seedPayroll(t, r, 1, 1000)
	seedPayroll(t, r, 2, 2000)
	seedPayroll(t, r, 3, 3000)

	stats := getStats(t, r)
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.TotalNetPay != 6000 {
		t.Errorf("totalNetPay = %v, want 6000", stats.TotalNetPay)
	}
	if stats.AverageNetPay != 2000 {
		t.Errorf("averageNetPay = %v, want 2000", stats.AverageNetPay)
	}
}

func TestPayrollStats_ExcludesSoftDeleted(t *testing.T) {
	r := setupPayrollAPI(t)

	seedPayroll(t, r, 1, 1000)
	seedPayroll(t, r, 2, 99999)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/payrolls/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	stats := getStats(t, r)
	if stats.Total != 1 {
		t.Errorf("total = %d, want 1 after soft delete", stats.Total)
	}
	if stats.TotalNetPay != 1000 || stats.AverageNetPay != 1000 {
		t.Errorf("net pay = %v/%v, want 1000/1000 with the deleted row excluded",
			stats.TotalNetPay, stats.AverageNetPay)
	}
}

func TestPayrollStats_EmptyPopulation(t *testing.T) {
	stats := getStats(t, setupPayrollAPI(t))

	if stats.Total != 0 || stats.TotalNetPay != 0 || stats.AverageNetPay != 0 {
		t.Errorf("stats = %+v, want all zeros for an empty table", stats)
	}
}
