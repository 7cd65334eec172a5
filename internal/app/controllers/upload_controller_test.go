package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/error/code"
)

// uploadFile posts a multipart body with a single "image" part.
func uploadFile(t *testing.T, r *gin.Engine, path, filename, contentType, token string, payload []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid JSON envelope: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestUploadProjectImage(t *testing.T) {
	r, c := newTestRouter(t)
	token := registerAdmin(t, r)

	payload := []byte("\x89PNG\r\n\x1a\nfake image bytes")
	w, env := uploadFile(t, r, "/api/upload/project", "photo.png", "image/png", token, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if !strings.HasPrefix(data.ImageURL, "/uploads/projects/") {
		t.Errorf("locator %q lacks the /uploads/projects/ prefix", data.ImageURL)
	}
	if !strings.HasSuffix(data.ImageURL, ".png") {
		t.Errorf("locator %q lost the extension", data.ImageURL)
	}

	// The blob must exist on disk under the configured directory.
	stored := filepath.Join(c.GetConfig().UploadDir, "projects", filepath.Base(data.ImageURL))
	if _, err := os.Stat(stored); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestUploadRejectsBadType(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	w, env := uploadFile(t, r, "/api/upload/client", "script.exe", "application/octet-stream", token, []byte("MZ"))
	if w.Code != http.StatusBadRequest || env.Code != code.ErrUploadRejected {
		t.Errorf("got status %d code %d, want 400/%d", w.Code, env.Code, code.ErrUploadRejected)
	}

	// Image extension with a mismatched declared content type.
	w, env = uploadFile(t, r, "/api/upload/client", "sneaky.png", "application/x-sh", token, []byte("#!/bin/sh"))
	if w.Code != http.StatusBadRequest || env.Code != code.ErrUploadRejected {
		t.Errorf("mismatched type: got status %d code %d", w.Code, env.Code)
	}
}

func TestUploadRejectsOversize(t *testing.T) {
	r, c := newTestRouter(t)
	token := registerAdmin(t, r)

	over := c.GetConfig().MaxUploadSizeBytes() + 1
	w, env := uploadFile(t, r, "/api/upload/project", "big.png", "image/png", token, make([]byte, over))
	if w.Code != http.StatusBadRequest || env.Code != code.ErrUploadRejected {
		t.Errorf("got status %d code %d, want 400/%d", w.Code, env.Code, code.ErrUploadRejected)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAdmin(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/project", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if rec.Code != http.StatusBadRequest || env.Code != code.ErrNoFileUploaded {
		t.Errorf("got status %d code %d, want 400/%d", rec.Code, env.Code, code.ErrNoFileUploaded)
	}
}
