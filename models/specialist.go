package models

import "time"

// SpecialistTypes is the suggestion list shown on the admin form. The
// type field stays free text server-side, matching the submission form.
var SpecialistTypes = []string{"SALT", "OT", "Therapist", "Psychologist", "Support Worker"}

type SpecialistContact struct {
	Email string `json:"email" gorm:"not null"`
	Phone string `json:"phone,omitempty"`
}

// Specialist is a directory entry. Records are append-only: created by
// an authorised admin, never updated or deleted.
type Specialist struct {
	ID        uint              `json:"-" gorm:"primaryKey"`
	Name      string            `json:"name" gorm:"not null"`
	Type      string            `json:"type" gorm:"not null"`
	Location  string            `json:"location" gorm:"not null"`
	Contact   SpecialistContact `json:"contact" gorm:"embedded;embeddedPrefix:contact_"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
