package modules

import (
	"github.com/TomerBass/DogNames/internal/modules/dog"
	dogrepo "github.com/TomerBass/DogNames/internal/modules/dog/repo"
	"github.com/TomerBass/DogNames/internal/storage"
)

type AppModules struct {
	Dog *dog.Module
}

func New(dogStore dogrepo.DogStore, sink storage.Sink) *AppModules {
	return &AppModules{
		Dog: dog.New(dogStore, sink),
	}
}
