package timeoff

import (
	"encoding/json"
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

func setupTimeoffAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Attendance{}, &domain.Leave{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	NewModule(db).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAttendanceStats(t *testing.T) {
	r := setupTimeoffAPI(t)

	// Two present (8h and 6h), one absent (0h).
	seeds := []string{
		`{"employeeId":1,"date":"2025-06-02T00:00:00Z","hoursWorked":8,"status":"present"}`,
		`{"employeeId":2,"date":"2025-06-02T00:00:00Z","hoursWorked":6,"status":"present"}`,
		`{"employeeId":3,"date":"2025-06-02T00:00:00Z","hoursWorked":0,"status":"absent"}`,
	}
	for _, body := range seeds {
		if w := doRequest(t, r, http.MethodPost, "/api/v1/attendance", body); w.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
		}
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/attendance/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}

	var stats AttendanceStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if want := (8.0 + 6.0 + 0.0) / 3; stats.AverageHours != want {
		t.Errorf("averageHours = %v, want %v", stats.AverageHours, want)
	}

	counts := make(map[string]int64)
	for _, b := range stats.ByStatus {
		counts[b.Status] = b.Count
	}
	if counts["present"] != 2 || counts["absent"] != 1 {
		t.Errorf("byStatus = %v, want present=2 absent=1", counts)
	}
}

func TestAttendanceStats_ExcludesSoftDeleted(t *testing.T) {
	r := setupTimeoffAPI(t)

	seeds := []string{
		`{"employeeId":1,"date":"2025-06-02T00:00:00Z","hoursWorked":8,"status":"present"}`,
		`{"employeeId":2,"date":"2025-06-02T00:00:00Z","hoursWorked":2,"status":"present"}`,
	}
	for _, body := range seeds {
		if w := doRequest(t, r, http.MethodPost, "/api/v1/attendance", body); w.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
		}
	}
	if w := doRequest(t, r, http.MethodDelete, "/api/v1/attendance/2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/attendance/stats", "")
	var stats AttendanceStatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("total = %d, want 1 after soft delete", stats.Total)
	}
	if stats.AverageHours != 8 {
		t.Errorf("averageHours = %v, want 8 with the deleted row excluded", stats.AverageHours)
	}
}
