package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	platformservice "github.com/TomerBass/DogNames/internal/platform/service"

	"gorm.io/gorm"
)

// Delete removes a dog row by id, then cleans up every stored image in its
// identifier list. Image removal is best-effort: the row deletion is what
// the caller sees, file errors are only logged.
func (s *Service) Delete(ctx context.Context, id uint) error {
	dog, err := s.dogStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("Dog not found")
		}
		log.Printf("find dog %d: %v", id, err)
		return platformservice.NewInternalError("failed to look up dog")
	}

	if err := s.dogStore.Delete(dog); err != nil {
		log.Printf("delete dog %d: %v", id, err)
		return platformservice.NewInternalError("failed to delete database entry")
	}

	// Row is gone; remove all referenced images, not just the primary.
	var images []string
	if err := json.Unmarshal([]byte(dog.ImagesJSON), &images); err != nil || len(images) == 0 {
		images = []string{dog.ImagePath}
	}
	for _, identifier := range images {
		if err := s.sink.Remove(ctx, identifier); err != nil {
			log.Printf("remove image %q of dog %d: %v", identifier, id, err)
		}
	}

	return nil
}
