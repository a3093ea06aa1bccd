package models

import (
	"time"

	"gorm.io/gorm"
)

// BlockedDate removes a whole day, or the [Start, End) window of it, from
// the bookable grid. An empty BarberID blocks every barber. Multi-day closures
// are stored as one record per day.
type BlockedDate struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	Date     time.Time `gorm:"not null;index;uniqueIndex:idx_blocked_scope" json:"date" bson:"date"`
	BarberID string    `gorm:"size:36;index;uniqueIndex:idx_blocked_scope" json:"barber_id,omitempty" bson:"barber_id,omitempty"`
	Start    string    `gorm:"size:5;uniqueIndex:idx_blocked_scope" json:"start,omitempty" bson:"start,omitempty"`
	End      string    `gorm:"size:5;uniqueIndex:idx_blocked_scope" json:"end,omitempty" bson:"end,omitempty"`
	Reason   string    `gorm:"size:255" json:"reason,omitempty" bson:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (b *BlockedDate) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

func (b BlockedDate) IsFullDay() bool {
	return b.Start == "" || b.End == ""
}

// AppliesTo reports whether the block affects barberID. Global blocks affect
// everyone; a barber-scoped block only affects that barber.
func (b BlockedDate) AppliesTo(barberID string) bool {
	return b.BarberID == "" || b.BarberID == barberID
}
