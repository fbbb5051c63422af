package resumes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepo(), nil)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

const createBody = `{
  "userId": "user-1",
  "title": "Backend Engineer",
  "data": {
    "personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
    "summary": "Engineer.",
    "experience": [{"company": "Analytical Engines", "position": "Lead", "startDate": "Jan 2020", "current": true, "description": "Shipped things."}],
    "skills": ["Go", "PostgreSQL"]
  }
}`

func TestHandlerCreateResume(t *testing.T) {
	r, _ := newTestRouter()

	resp := postJSON(r, "/api/resumes", createBody)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var resume Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &resume); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resume.ID == "" || resume.Data.PersonalInfo.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected resume: %+v", resume)
	}
	if resume.Data.Experience[0].ID == "" {
		t.Fatalf("expected server-assigned experience id")
	}
}

func TestHandlerCreateResumeSchemaViolations(t *testing.T) {
	r, _ := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"userId": "user-1"}`},
		{name: "missing userId", body: `{"title": "X"}`},
		{name: "wrong skills type", body: `{"userId": "u", "title": "X", "data": {"skills": "Go"}}`},
		{name: "not json", body: `not-json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(r, "/api/resumes", tt.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			if !strings.Contains(resp.Body.String(), "validation_error") {
				t.Fatalf("expected validation_error code, got %s", resp.Body.String())
			}
		})
	}
}

func TestHandlerGetResumeNotFound(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHandlerUpdateClearsChildren(t *testing.T) {
	r, _ := newTestRouter()

	created := postJSON(r, "/api/resumes", createBody)
	var resume Resume
	if err := json.Unmarshal(created.Body.Bytes(), &resume); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	update := `{"data": {"personalInfo": {"fullName": "Ada Lovelace"}, "experience": []}}`
	req := httptest.NewRequest(http.MethodPut, "/api/resumes/"+resume.ID, strings.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	fetched := httptest.NewRecorder()
	r.ServeHTTP(fetched, httptest.NewRequest(http.MethodGet, "/api/resumes/"+resume.ID, nil))
	var after Resume
	if err := json.Unmarshal(fetched.Body.Bytes(), &after); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(after.Data.Experience) != 0 {
		t.Fatalf("expected cleared experience, got %+v", after.Data.Experience)
	}
}

func TestHandlerDeleteResume(t *testing.T) {
	r, _ := newTestRouter()

	created := postJSON(r, "/api/resumes", createBody)
	var resume Resume
	if err := json.Unmarshal(created.Body.Bytes(), &resume); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+resume.ID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	again := httptest.NewRecorder()
	r.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/api/resumes/"+resume.ID, nil))
	if again.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", again.Code)
	}
}

func TestHandlerListByUser(t *testing.T) {
	r, _ := newTestRouter()

	if resp := postJSON(r, "/api/resumes", createBody); resp.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/resumes", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var list []Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 1 || list[0].UserID != "user-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
