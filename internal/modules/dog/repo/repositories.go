package repo

import (
	"github.com/TomerBass/DogNames/internal/model"

	"gorm.io/gorm"
)

type DogStore interface {
	Create(dog *model.Dog) error
	FindByID(id uint) (*model.Dog, error)
	// SearchByName matches the substring case-insensitively, in the store.
	SearchByName(name string) ([]model.Dog, error)
	FindAll() ([]model.Dog, error)
	FindAllByCreatedDesc() ([]model.Dog, error)
	Delete(dog *model.Dog) error
}

func NewDogRepository(db *gorm.DB) DogStore {
	return &DogRepository{db: db}
}
