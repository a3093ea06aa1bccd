package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is a bookable treatment. DurationMinutes defines how long the
// barber is reserved.
type Service struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	Name            string  `gorm:"size:100;not null" json:"name" bson:"name"`
	Price           float64 `json:"price" bson:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes" bson:"duration_minutes"`
	Note            string  `gorm:"size:255" json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
