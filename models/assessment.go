package models

import "time"

// Assessment is a public assessment request. Append-only, read back
// only by the admin listing.
type Assessment struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Age           int       `json:"age" gorm:"not null"`
	Concerns      string    `json:"concerns" gorm:"not null"`
	ParentEmail   string    `json:"parentEmail,omitempty"`
	ParentPhone   string    `json:"parentPhone,omitempty"`
	PreferredDate string    `json:"preferredDate,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
