package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hrkit/hrkit/internal/domain"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestCreated_SetsLocationHeader(t *testing.T) {
	c, w := testContext(t)

	Created(c, "/api/v1/leaves/7", gin.H{"id": 7})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/v1/leaves/7" {
		t.Errorf("Location = %q, want %q", loc, "/api/v1/leaves/7")
	}
}

func TestNoContent(t *testing.T) {
	c, w := testContext(t)

	NoContent(c)
	// gin defers status-only writes until the handler chain completes; flush
	// explicitly since there is no engine in this harness.
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"validation", domain.NewAppError(domain.CodeValidation, "bad input", nil), http.StatusBadRequest, "bad input"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"conflict", domain.ErrAlreadyExists, http.StatusConflict, "already exists"},
		{"internal hides detail", domain.NewAppError(domain.CodeInternal, "db exploded", nil), http.StatusInternalServerError, "internal error"},
		{"plain error hides detail", errors.New("secret detail"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t)

			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("parse body: %v", err)
			}
			if body.Code != tt.wantStatus {
				t.Errorf("body.Code = %d, want %d", body.Code, tt.wantStatus)
			}
			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestBindAndValidate_FieldErrorsUseJSONNames(t *testing.T) {
	type createReq struct {
		Title      string `json:"title" binding:"required,max=10"`
		EmployeeID uint   `json:"employeeId" binding:"required"`
	}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"title":""}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req createReq
	if BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate() = true, want false for invalid body")
	}

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if _, ok := body.Errors["title"]; !ok {
		t.Errorf("Errors = %v, want key %q", body.Errors, "title")
	}
	if _, ok := body.Errors["employeeId"]; !ok {
		t.Errorf("Errors = %v, want key %q", body.Errors, "employeeId")
	}
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if BindAndValidate(c, &req) {
		t.Fatal("BindAndValidate() = true, want false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
