package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(lister ResumeLister) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepo(), lister)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func TestHandlerCreateUser(t *testing.T) {
	r, _ := newTestRouter(nil)

	body := `{"email":"ada@example.com","name":"Ada Lovelace"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var user User
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.ID == "" || user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestHandlerCreateUserDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(nil)

	body := `{"email":"ada@example.com","name":"Ada"}`
	for i, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != wantCode {
			t.Fatalf("request %d: expected %d, got %d", i+1, wantCode, resp.Code)
		}
		if wantCode == http.StatusConflict && !strings.Contains(resp.Body.String(), "email_taken") {
			t.Fatalf("expected email_taken code, got %s", resp.Body.String())
		}
	}
}

func TestHandlerGetByIDIncludesResumes(t *testing.T) {
	lister := &staticLister{summaries: []ResumeSummary{
		{ID: "r1", Title: "Backend Engineer", UpdatedAt: time.Now().UTC()},
	}}
	r, svc := newTestRouter(lister)

	user, err := svc.Create(context.Background(), "ada@example.com", "Ada")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		ID      string          `json:"id"`
		Resumes []ResumeSummary `json:"resumes"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.ID != user.ID || len(payload.Resumes) != 1 {
		t.Fatalf("unexpected payload: %s", resp.Body.String())
	}
}

func TestHandlerGetByEmailUsesLiteralSegment(t *testing.T) {
	r, svc := newTestRouter(nil)

	if _, err := svc.Create(context.Background(), "ada@example.com", "Ada"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/email/ada@example.com", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHandlerGetByIDNotFound(t *testing.T) {
	r, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "not_found") {
		t.Fatalf("expected not_found code, got %s", resp.Body.String())
	}
}
