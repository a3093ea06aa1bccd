package models

import (
	"time"

	"gorm.io/gorm"
)

type Barber struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	Name      string `gorm:"size:100;not null" json:"name" bson:"name"`
	Specialty string `gorm:"size:100" json:"specialty" bson:"specialty"`
	ImageRef  string `gorm:"size:500" json:"image_ref" bson:"image_ref"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

// DefaultBarbers is the roster seeded into an empty store.
func DefaultBarbers() []Barber {
	return []Barber{
		{Name: "Nave Azulay", Specialty: "Fades & Beards"},
		{Name: "Yossi Eilok", Specialty: "Young Style"},
		{Name: "Roi Yashar", Specialty: "Colorist"},
	}
}
