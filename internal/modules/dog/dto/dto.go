package dto

import (
	"encoding/json"
	"time"

	"github.com/TomerBass/DogNames/internal/model"
)

type DogResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	ImagePath    string    `json:"image_path"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
	Age          *string   `json:"age"`
	AdoptionDate *string   `json:"adoption_date"`
	Location     *string   `json:"location"`
	City         *string   `json:"city"`
}

type SearchResponse struct {
	Count int           `json:"count"`
	Dogs  []DogResponse `json:"dogs"`
}

type UploadResponse struct {
	Message string      `json:"message"`
	Dog     DogResponse `json:"dog"`
}

// NewDogResponse projects a stored row into its API representation. A
// missing or malformed images blob degrades to the primary image alone.
func NewDogResponse(dog model.Dog) DogResponse {
	var adoptionDate *string
	if dog.AdoptionDate != nil {
		s := dog.AdoptionDate.Format("2006-01-02")
		adoptionDate = &s
	}

	return DogResponse{
		ID:           dog.ID,
		Name:         dog.Name,
		ImagePath:    dog.ImagePath,
		Images:       decodeImages(dog.ImagesJSON, dog.ImagePath),
		CreatedAt:    dog.CreatedAt,
		Age:          dog.Age,
		AdoptionDate: adoptionDate,
		Location:     dog.Location,
		City:         dog.City,
	}
}

// NewDogResponses projects a slice of rows, preserving order.
func NewDogResponses(dogs []model.Dog) []DogResponse {
	responses := make([]DogResponse, 0, len(dogs))
	for _, dog := range dogs {
		responses = append(responses, NewDogResponse(dog))
	}
	return responses
}

func decodeImages(raw, primary string) []string {
	if raw == "" {
		return []string{primary}
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil || len(images) == 0 {
		return []string{primary}
	}
	return images
}
