package models

import "time"

// LocalEntry is one key of the device-local onboarding store. Value holds the
// JSON encoding of whatever the pipeline stored under Key.
type LocalEntry struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time
}
