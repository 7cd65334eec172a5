package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"realtrust-http-service/internal/error/code"
)

func TestSubscribeEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/subscribers", `{"email":"Reader@Example.com"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}
	var sub struct {
		Email      string `json:"email"`
		Subscribed bool   `json:"subscribed"`
	}
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if sub.Email != "reader@example.com" || !sub.Subscribed {
		t.Errorf("unexpected subscriber: %+v", sub)
	}

	// Duplicate subscription.
	w, env = doJSON(t, r, http.MethodPost, "/api/subscribers", `{"email":"reader@example.com"}`, "")
	if w.Code != http.StatusBadRequest || env.Code != code.ErrSubscriberAlreadyExist {
		t.Errorf("duplicate: got status %d code %d", w.Code, env.Code)
	}

	// Invalid email.
	w, env = doJSON(t, r, http.MethodPost, "/api/subscribers", `{"email":"not-an-email"}`, "")
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Errorf("invalid email: got status %d code %d", w.Code, env.Code)
	}
}

func TestSubscriberAdminEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	if w, _ := doJSON(t, r, http.MethodPost, "/api/subscribers", `{"email":"reader@example.com"}`, ""); w.Code != http.StatusCreated {
		t.Fatalf("seeding failed")
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/subscribers", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("listing failed with %d: %s", w.Code, w.Body.String())
	}
	var subs []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &subs); err != nil || len(subs) != 1 {
		t.Fatalf("got %d subscribers, want 1", len(subs))
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/admin/subscribers/1", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed with %d", w.Code)
	}
	w, env = doJSON(t, r, http.MethodDelete, "/api/admin/subscribers/1", "", token)
	if w.Code != http.StatusNotFound || env.Code != code.ErrSubscriberNotFound {
		t.Errorf("second delete: got status %d code %d", w.Code, env.Code)
	}
}
