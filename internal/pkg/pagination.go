package pkg

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// reservedParams lists query parameter names with fixed meanings; everything
// else is treated as a per-resource filter (e.g. "employeeId").
var reservedParams = map[string]bool{
	"page":      true,
	"pageSize":  true,
	"sort":      true,
	"q":         true,
	"startDate": true,
	"endDate":   true,
}

// ParseListQuery extracts pagination, sorting, search, date-range, and filter
// parameters from the query string. Page and pageSize are clamped here, once,
// for every resource: page >= 1, 1 <= pageSize <= 100, default 20.
func ParseListQuery(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:      page,
		PageSize:  pageSize,
		Sort:      c.Query("sort"),
		Search:    c.Query("q"),
		StartDate: parseDateParam(c.Query("startDate"), false),
		EndDate:   parseDateParam(c.Query("endDate"), true),
		Filters:   filters,
	}
}

// parseDateParam accepts a date-only value ("2006-01-02") or a full RFC 3339
// timestamp. Date-only end bounds are widened to the end of the day so the
// range stays inclusive. Unparseable values are ignored.
func parseDateParam(value string, endOfDay bool) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	return nil
}
