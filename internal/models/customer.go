package models

import "time"

const DefaultNotificationMinutes = 60

// Customer is keyed by phone number; there is no login.
type Customer struct {
	Phone string `gorm:"primaryKey;size:20" json:"phone" bson:"_id"`
	Name  string `gorm:"size:100;not null" json:"name" bson:"name"`

	LastVisit   time.Time `json:"last_visit" bson:"last_visit"`
	TotalVisits int       `gorm:"default:0" json:"total_visits" bson:"total_visits"`

	NotificationPreferenceMinutes int `gorm:"default:60" json:"notification_preference_minutes" bson:"notification_preference_minutes"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
