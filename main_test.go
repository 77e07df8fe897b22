package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomerBass/DogNames/internal/config"
	"github.com/TomerBass/DogNames/internal/storage"

	"github.com/gin-gonic/gin"
)

// Locally stored images must be reachable under the uploads URL prefix
// with the configured cache policy.
func TestMountStatic_ServesLocalUploads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.InitConfig(t.TempDir())

	sink, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	identifier, err := sink.Store(context.Background(), []byte("image-bytes"), "rex.jpg")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	r := gin.New()
	mountStatic(r, config.Get(), sink)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/"+identifier, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored file, got %d", w.Code)
	}
	if w.Body.String() != "image-bytes" {
		t.Fatalf("served bytes differ: %q", w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc == "" {
		t.Fatalf("expected a Cache-Control header on static responses")
	}

	// Absent files are 404, not errors.
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d", w2.Code)
	}
}
