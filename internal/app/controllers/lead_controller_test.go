package controllers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"realtrust-http-service/internal/error/code"
)

func TestCreateLeadEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John Doe","email":"john@example.com","phone":"+1 (555) 012-3456","message":"Hi"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	var lead struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &lead); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if lead.Status != "new" {
		t.Errorf("got status %q, want new", lead.Status)
	}

	// Duplicate email.
	w, env = doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John Again","email":"john@example.com","phone":"555"}`, "")
	if w.Code != http.StatusBadRequest || env.Code != code.ErrLeadAlreadyExist {
		t.Errorf("duplicate: got status %d code %d", w.Code, env.Code)
	}
}

func TestCreateLeadPhoneValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John Doe","email":"john@example.com","phone":"call me maybe"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if env.Code != code.ErrValidation {
		t.Errorf("got code %d, want %d", env.Code, code.ErrValidation)
	}
}

func TestGetLeadsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	for i := 0; i < 12; i++ {
		body := fmt.Sprintf(`{"name":"Lead %02d","email":"lead%02d@example.com","phone":"555"}`, i, i)
		if w, _ := doJSON(t, r, http.MethodPost, "/api/leads", body, ""); w.Code != http.StatusCreated {
			t.Fatalf("seeding lead %d failed: %s", i, w.Body.String())
		}
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/leads?page=2&limit=10", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int64 `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if data.Pagination.Total != 12 || data.Pagination.Pages != 2 {
		t.Errorf("pagination: %+v", data.Pagination)
	}
	if len(data.Data) != 2 {
		t.Errorf("got %d leads on page 2, want 2", len(data.Data))
	}

	// The listing is admin-only.
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/leads", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated listing: got status %d, want 401", w.Code)
	}
}

func TestUpdateLeadEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	if w, _ := doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John","email":"john@example.com","phone":"555"}`, ""); w.Code != http.StatusCreated {
		t.Fatalf("seeding failed")
	}

	w, env := doJSON(t, r, http.MethodPut, "/api/admin/leads/1", `{"status":"qualified"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	var lead struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &lead); err != nil || lead.Status != "qualified" {
		t.Errorf("got status %q, want qualified", lead.Status)
	}

	w, env = doJSON(t, r, http.MethodPut, "/api/admin/leads/1", `{"status":"bogus"}`, token)
	if w.Code != http.StatusBadRequest || env.Code != code.ErrInvalidLeadStatus {
		t.Errorf("invalid status: got status %d code %d", w.Code, env.Code)
	}

	w, env = doJSON(t, r, http.MethodPut, "/api/admin/leads/999", `{"status":"new"}`, token)
	if w.Code != http.StatusNotFound || env.Code != code.ErrLeadNotFound {
		t.Errorf("missing lead: got status %d code %d", w.Code, env.Code)
	}
}

func TestExportLeadsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	if w, _ := doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John","email":"john@example.com","phone":"555","message":"Hello, \"world\""}`, ""); w.Code != http.StatusCreated {
		t.Fatalf("seeding failed")
	}

	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/leads/export", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("got content type %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("got content disposition %q", cd)
	}

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d CSV rows, want header + 1", len(records))
	}
	if records[0][0] != "name" || records[0][6] != "createdAt" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[1][4] != `Hello, "world"` {
		t.Errorf("message not round-tripped: %q", records[1][4])
	}
}

func TestGetLeadStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/leads/stats", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var stats struct {
		Total          int64   `json:"total"`
		ConversionRate float64 `json:"conversionRate"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if stats.Total != 0 || stats.ConversionRate != 0 {
		t.Errorf("empty stats: %+v", stats)
	}
}

func TestGetAnalyticsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	if w, _ := doJSON(t, r, http.MethodPost, "/api/leads",
		`{"name":"John","email":"john@example.com","phone":"555"}`, ""); w.Code != http.StatusCreated {
		t.Fatalf("seeding failed")
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/analytics", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	var analytics struct {
		LeadsOverTime []struct {
			Date  string `json:"date"`
			Count int64  `json:"count"`
		} `json:"leadsOverTime"`
	}
	if err := json.Unmarshal(env.Data, &analytics); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if len(analytics.LeadsOverTime) != 1 || analytics.LeadsOverTime[0].Count != 1 {
		t.Errorf("unexpected analytics: %+v", analytics)
	}

	// Malformed date bound.
	w, env = doJSON(t, r, http.MethodGet, "/api/admin/analytics?startDate=yesterday", "", token)
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Errorf("bad date: got status %d code %d", w.Code, env.Code)
	}
}
