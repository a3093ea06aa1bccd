package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingSchemaVersion 1 introduced DurationMinutes. Records written before
// carry version 0 and fall back to the schedule's slot duration.
const BookingSchemaVersion = 1

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`

	BarberID   string `gorm:"size:36;not null;uniqueIndex:idx_bookings_slot,priority:1" json:"barber_id" bson:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name" bson:"barber_name"`

	Date            time.Time `gorm:"not null;index;uniqueIndex:idx_bookings_slot,priority:2" json:"date" bson:"date"`
	Time            string    `gorm:"size:5;not null;uniqueIndex:idx_bookings_slot,priority:3" json:"time" bson:"time"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes,omitempty"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name" bson:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone" bson:"customer_phone"`

	Service string  `gorm:"size:100" json:"service" bson:"service"`
	Price   float64 `json:"price" bson:"price"`

	SchemaVersion int       `gorm:"default:0" json:"schema_version" bson:"schema_version"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

// EffectiveDuration is the number of minutes the booking occupies before any
// buffer is applied.
func (b Booking) EffectiveDuration(slotDuration int) int {
	if b.SchemaVersion < BookingSchemaVersion || b.DurationMinutes <= 0 {
		return slotDuration
	}
	return b.DurationMinutes
}
