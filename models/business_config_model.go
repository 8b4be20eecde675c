package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessConfigRow is one key/value pair of the shop calendar
// configuration. The scheduling package overlays these rows onto its
// defaults; see scheduling.ResolveConfig.
type BusinessConfigRow struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key   string    `gorm:"size:50;not null;unique" json:"key"`
	Value string    `gorm:"size:255;not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
