package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`

	Action   string `gorm:"size:50;not null;index" json:"action" bson:"action"`
	Entity   string `gorm:"size:50" json:"entity" bson:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id" bson:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata" bson:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at" bson:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
