package service

import (
	"github.com/TomerBass/DogNames/internal/modules/dog/repo"
	"github.com/TomerBass/DogNames/internal/storage"
)

type Service struct {
	dogStore repo.DogStore
	sink     storage.Sink
}

func New(dogStore repo.DogStore, sink storage.Sink) *Service {
	return &Service{
		dogStore: dogStore,
		sink:     sink,
	}
}
