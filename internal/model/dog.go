package model

import "time"

// Dog is the single persisted entity: one row per upload request.
// ImagePath is the primary image identifier (local filename or Cloudinary
// URL); ImagesJSON holds the full ordered identifier list as a JSON array,
// with ImagePath always its first element.
type Dog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null;index:idx_name"`
	ImagePath  string    `json:"image_path" gorm:"not null"`
	ImagesJSON string    `json:"-" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`

	Age          *string    `json:"age"`
	AdoptionDate *time.Time `json:"adoption_date" gorm:"type:date"`
	Location     *string    `json:"location"`
	City         *string    `json:"city"`
}

// TableName keeps the table name stable across dialects.
func (Dog) TableName() string {
	return "dogs"
}
