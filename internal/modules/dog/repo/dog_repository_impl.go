package repo

import (
	"github.com/TomerBass/DogNames/internal/model"

	"gorm.io/gorm"
)

type DogRepository struct {
	db *gorm.DB
}

func (r *DogRepository) Create(dog *model.Dog) error {
	return r.db.Create(dog).Error
}

func (r *DogRepository) FindByID(id uint) (*model.Dog, error) {
	var dog model.Dog
	if err := r.db.First(&dog, id).Error; err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *DogRepository) SearchByName(name string) ([]model.Dog, error) {
	var dogs []model.Dog
	if err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *DogRepository) FindAll() ([]model.Dog, error) {
	var dogs []model.Dog
	if err := r.db.Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *DogRepository) FindAllByCreatedDesc() ([]model.Dog, error) {
	var dogs []model.Dog
	if err := r.db.Order("created_at desc").Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *DogRepository) Delete(dog *model.Dog) error {
	return r.db.Delete(dog).Error
}
