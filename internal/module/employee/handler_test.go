package employee

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

func setupEmployeeAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Employee{}, &domain.Department{}, &domain.JobRole{}); err != nil {
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

func TestEmployeeStats(t *testing.T) {
	r := setupEmployeeAPI(t)

	// Two in department 1, one in department 2, one unassigned.
	seeds := []string{
		`{"name":"A","departmentId":1}`,
		`{"name":"B","departmentId":1}`,
		`{"name":"C","departmentId":2}`,
		`{"name":"D"}`,
	}
	for _, body := range seeds {
		if w := doRequest(t, r, http.MethodPost, "/api/v1/employees", body); w.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
		}
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}

	var stats StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}

	counts := make(map[string]int64)
	for _, b := range stats.ByDepartment {
		key := "none"
		if b.DepartmentID != nil {
			key = fmt.Sprint(*b.DepartmentID)
		}
		counts[key] = b.Count
	}
	if counts["1"] != 2 || counts["2"] != 1 || counts["none"] != 1 {
		t.Errorf("byDepartment = %v, want dept1=2 dept2=1 unassigned=1", counts)
	}
}

func TestEmployeeStats_ExcludesSoftDeleted(t *testing.T) {
	r := setupEmployeeAPI(t)

	for _, body := range []string{`{"name":"A"}`, `{"name":"B"}`} {
		if w := doRequest(t, r, http.MethodPost, "/api/v1/employees", body); w.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
		}
	}
	if w := doRequest(t, r, http.MethodDelete, "/api/v1/employees/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/employees/stats", "")
	var stats StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("total = %d, want 1 after soft delete", stats.Total)
	}
}
