package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Local writes images into a flat uploads directory. The stored name is
// the submission filename prefixed with a microsecond timestamp, which
// keeps names collision-resistant without any coordination.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the directory the sink writes into.
func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Store(_ context.Context, data []byte, filename string) (string, error) {
	now := time.Now()
	safeName := fmt.Sprintf("%s_%06d_%s",
		now.Format("20060102_150405"), now.Nanosecond()/1000, filepath.Base(filename))

	dst := filepath.Join(l.dir, safeName)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("save file %q: %w", safeName, err)
	}
	return safeName, nil
}

func (l *Local) Remove(_ context.Context, identifier string) error {
	// Remote URLs recorded by a previous Cloudinary deployment are not ours.
	if strings.Contains(identifier, "://") {
		return nil
	}

	// Base strips any path components an identifier could smuggle in.
	path := filepath.Join(l.dir, filepath.Base(identifier))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
