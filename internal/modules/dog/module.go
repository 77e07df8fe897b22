package dog

import (
	"github.com/TomerBass/DogNames/internal/modules/dog/handler"
	"github.com/TomerBass/DogNames/internal/modules/dog/repo"
	"github.com/TomerBass/DogNames/internal/modules/dog/service"
	"github.com/TomerBass/DogNames/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(dogStore repo.DogStore, sink storage.Sink) *Module {
	moduleService := service.New(dogStore, sink)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
