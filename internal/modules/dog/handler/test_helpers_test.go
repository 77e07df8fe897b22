package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomerBass/DogNames/internal/modules/dog/repo"
	dogservice "github.com/TomerBass/DogNames/internal/modules/dog/service"
	"github.com/TomerBass/DogNames/internal/storage"
	"github.com/TomerBass/DogNames/internal/testutils"

	"github.com/gin-gonic/gin"
)

var testHandler *Handler

// setupTest wires the handler against a fresh in-memory database and a
// temp-dir local sink, and returns a router with the API routes mounted.
func setupTest(t *testing.T) (*gin.Engine, *storage.Local) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)

	sink, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	testHandler = New(dogservice.New(repo.NewDogRepository(gdb), sink))

	r := gin.New()
	r.GET("/", testHandler.Root)
	r.GET("/api/search", testHandler.SearchDogs)
	r.GET("/api/dogs", testHandler.GetAllDogs)
	r.POST("/api/upload", testHandler.UploadDog)
	r.DELETE("/api/dogs/:id", testHandler.DeleteDog)
	return r, sink
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	name string
	data []byte
}

// multipartUpload performs a POST /api/upload with the given fields and
// files and returns the recorder.
func multipartUpload(t *testing.T, r *gin.Engine, fields []formField, files []formFile) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range fields {
		_ = mw.WriteField(f.key, f.value)
	}
	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
