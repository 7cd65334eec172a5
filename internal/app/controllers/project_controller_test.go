package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/error/code"
)

func createProject(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/projects",
		`{"name":"Platform","description":"A property platform","image":"/uploads/projects/a.png","category":"Web"}`, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create project failed with %d: %s", w.Code, w.Body.String())
	}
	var project struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &project); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	return project.ID
}

func TestProjectEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	// Mutations require authentication, reads do not.
	w, _ := doJSON(t, r, http.MethodPost, "/api/projects",
		`{"name":"X","description":"Y","image":"/z.png"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create: got status %d, want 401", w.Code)
	}

	id := createProject(t, r, token)

	w, env := doJSON(t, r, http.MethodGet, "/api/projects", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("public listing failed with %d", w.Code)
	}
	var projects []json.RawMessage
	if err := json.Unmarshal(env.Data, &projects); err != nil || len(projects) != 1 {
		t.Errorf("got %d projects, want 1", len(projects))
	}

	// Partial update: only category changes.
	w, env = doJSON(t, r, http.MethodPut, "/api/projects/1", `{"category":"SaaS"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed with %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if updated.Category != "SaaS" || updated.Name != "Platform" {
		t.Errorf("partial update wrong: %+v", updated)
	}

	// Blanking a required field is rejected.
	w, env = doJSON(t, r, http.MethodPut, "/api/projects/1", `{"name":"  "}`, token)
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Errorf("blank name: got status %d code %d", w.Code, env.Code)
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/projects/1", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed with %d", w.Code)
	}
	w, env = doJSON(t, r, http.MethodDelete, "/api/projects/1", "", token)
	if w.Code != http.StatusNotFound || env.Code != code.ErrProjectNotFound {
		t.Errorf("second delete: got status %d code %d", w.Code, env.Code)
	}

	_ = id
}

func TestProjectCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	w, env := doJSON(t, r, http.MethodPost, "/api/projects", `{"name":"Only name"}`, token)
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Errorf("got status %d code %d", w.Code, env.Code)
	}
}
