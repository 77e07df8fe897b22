package service

import (
	"log"
	"strings"

	"github.com/TomerBass/DogNames/internal/model"
	platformservice "github.com/TomerBass/DogNames/internal/platform/service"
)

// Search returns every dog whose name contains the term as a
// case-insensitive substring; an empty term returns every dog.
func (s *Service) Search(name string) ([]model.Dog, error) {
	var (
		dogs []model.Dog
		err  error
	)
	if strings.TrimSpace(name) == "" {
		dogs, err = s.dogStore.FindAll()
	} else {
		dogs, err = s.dogStore.SearchByName(name)
	}
	if err != nil {
		log.Printf("search dogs: %v", err)
		return nil, platformservice.NewInternalError("failed to search dogs")
	}
	return dogs, nil
}

// ListAll returns every dog, most recently created first.
func (s *Service) ListAll() ([]model.Dog, error) {
	dogs, err := s.dogStore.FindAllByCreatedDesc()
	if err != nil {
		log.Printf("list dogs: %v", err)
		return nil, platformservice.NewInternalError("failed to list dogs")
	}
	return dogs, nil
}
