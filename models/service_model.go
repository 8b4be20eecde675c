package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug             string    `gorm:"size:100;not null;unique" json:"slug"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	ShortDescription string    `gorm:"type:text" json:"short_description"`
	FullDescription  string    `gorm:"type:text" json:"full_description"`
	Icon             string    `gorm:"size:50" json:"icon"`
	Category         string    `gorm:"size:20;not null;default:'REPAIR'" json:"category"`
	PriceMin         *float64  `gorm:"type:numeric(10,2)" json:"price_min"`
	PriceLabel       string    `gorm:"size:100" json:"price_label"`
	Features         []string  `gorm:"serializer:json" json:"features"`
	EstimatedMinutes *int      `json:"estimated_minutes"`
	IsActive         bool      `gorm:"not null;default:true" json:"is_active"`
	SortOrder        int       `gorm:"not null;default:0" json:"sort_order"`

	FAQs []ServiceFAQ `gorm:"foreignkey:ServiceID" json:"faqs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceFAQ struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceID uuid.UUID `gorm:"not null" json:"-"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
}
