package models

import "time"

const (
	SettingsGeneralID  = "general"
	SettingsScheduleID = "schedule"
)

// Settings holds the shop-wide switches managed by the admin.
type Settings struct {
	ID             string `gorm:"primaryKey;size:32" json:"-" bson:"_id"`
	PassphraseHash string `gorm:"size:255" json:"-" bson:"passphrase_hash"`
	VacationMode   bool   `json:"vacation_mode" bson:"vacation_mode"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ScheduleRecord persists the weekly schedule as a single JSON document.
type ScheduleRecord struct {
	ID        string         `gorm:"primaryKey;size:32" bson:"_id"`
	Schedule  WeeklySchedule `gorm:"serializer:json;type:jsonb" bson:"schedule"`
	UpdatedAt time.Time      `bson:"updated_at"`
}
