package pkg

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func listQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/resources?"+rawQuery, nil)
	return c
}

func TestParseListQuery_Defaults(t *testing.T) {
	req := ParseListQuery(listQueryContext(t, ""))

	if req.Page != 1 {
		t.Errorf("Page = %d, want 1", req.Page)
	}
	if req.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", req.PageSize)
	}
	if req.Sort != "" || req.Search != "" {
		t.Errorf("Sort/Search = %q/%q, want empty", req.Sort, req.Search)
	}
	if req.StartDate != nil || req.EndDate != nil {
		t.Error("expected nil date bounds by default")
	}
	if len(req.Filters) != 0 {
		t.Errorf("Filters = %v, want empty", req.Filters)
	}
}

func TestParseListQuery_Clamping(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"negative page", "page=-3", 1, 20},
		{"zero page", "page=0", 1, 20},
		{"non-numeric page", "page=abc", 1, 20},
		{"zero pageSize", "pageSize=0", 1, 20},
		{"negative pageSize", "pageSize=-10", 1, 20},
		{"oversized pageSize", "pageSize=5000", 1, 100},
		{"valid values", "page=3&pageSize=50", 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseListQuery(listQueryContext(t, tt.query))
			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestParseListQuery_FiltersExcludeReservedParams(t *testing.T) {
	req := ParseListQuery(listQueryContext(t,
		"page=2&pageSize=5&sort=id:asc&q=smith&startDate=2025-01-01&endDate=2025-01-31&employeeId=7&status=open&empty="))

	if req.Search != "smith" {
		t.Errorf("Search = %q, want %q", req.Search, "smith")
	}
	if req.Sort != "id:asc" {
		t.Errorf("Sort = %q, want %q", req.Sort, "id:asc")
	}
	if len(req.Filters) != 2 {
		t.Fatalf("Filters = %v, want exactly employeeId and status", req.Filters)
	}
	if req.Filters["employeeId"] != "7" {
		t.Errorf("Filters[employeeId] = %q, want %q", req.Filters["employeeId"], "7")
	}
	if req.Filters["status"] != "open" {
		t.Errorf("Filters[status] = %q, want %q", req.Filters["status"], "open")
	}
}

func TestParseListQuery_DateParsing(t *testing.T) {
	req := ParseListQuery(listQueryContext(t, "startDate=2025-03-01&endDate=2025-03-31"))

	if req.StartDate == nil || !req.StartDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v, want 2025-03-01T00:00:00Z", req.StartDate)
	}
	// Date-only end bounds widen to the end of the day.
	if req.EndDate == nil || req.EndDate.Day() != 31 || req.EndDate.Hour() != 23 {
		t.Errorf("EndDate = %v, want end of 2025-03-31", req.EndDate)
	}

	// RFC 3339 timestamps pass through untouched.
	rfc := ParseListQuery(listQueryContext(t, "endDate=2025-03-15T12%3A30%3A00Z"))
	if rfc.EndDate == nil || !rfc.EndDate.Equal(time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v, want 2025-03-15T12:30:00Z", rfc.EndDate)
	}

	// Garbage is ignored.
	bad := ParseListQuery(listQueryContext(t, "startDate=soon"))
	if bad.StartDate != nil {
		t.Errorf("StartDate = %v, want nil for unparseable value", bad.StartDate)
	}
}
