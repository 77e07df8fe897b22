package service

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/TomerBass/DogNames/internal/modules/dog/repo"
	"github.com/TomerBass/DogNames/internal/storage"
	"github.com/TomerBass/DogNames/internal/testutils"
)

type testFile struct {
	name string
	data []byte
}

// setupTestService wires a Service against a fresh in-memory database and
// a local sink rooted in a temp dir.
func setupTestService(t *testing.T) (*Service, *storage.Local) {
	t.Helper()
	gdb := testutils.SetupDB(t)

	sink, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return New(repo.NewDogRepository(gdb), sink), sink
}

// fileHeaders builds real multipart file headers, preserving submission
// order, the same way gin hands them to the handler.
func fileHeaders(t *testing.T, files []testFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
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

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}
