package handler

import dogservice "github.com/TomerBass/DogNames/internal/modules/dog/service"

type Handler struct {
	dogService *dogservice.Service
}

func New(dogService *dogservice.Service) *Handler {
	return &Handler{dogService: dogService}
}
