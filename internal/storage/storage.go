// Package storage abstracts where uploaded image bytes end up: the local
// uploads directory or Cloudinary. Both backends hand back an opaque string
// identifier (a filename or a delivery URL) that the entity store records.
package storage

import (
	"context"

	"github.com/TomerBass/DogNames/internal/config"
)

type Sink interface {
	// Store persists an image payload and returns its identifier.
	Store(ctx context.Context, data []byte, filename string) (string, error)
	// Remove deletes a previously stored image. Identifiers the sink does
	// not own are ignored; absence is not an error.
	Remove(ctx context.Context, identifier string) error
}

// FromConfig selects the sink once at startup: the presence of a Cloudinary
// URL alone toggles remote storage.
func FromConfig(cfg config.Config) (Sink, error) {
	if cfg.UseCloudinary() {
		return NewCloudinary(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
	}
	return NewLocal(cfg.Upload.Path)
}
