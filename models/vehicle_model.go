package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"not null" json:"-"`
	Brand   string    `gorm:"size:100;not null" json:"brand"`
	Model   string    `gorm:"size:100;not null" json:"model"`
	Year    int       `gorm:"not null" json:"year"`
	Plate   string    `gorm:"size:20;not null" json:"plate"`
	Color   *string   `gorm:"size:50" json:"color"`

	// Damage photos uploaded to Cloudinary before the visit.
	PhotoURL *string `gorm:"size:255" json:"photo_url"`

	Owner User `gorm:"foreignkey:OwnerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
