package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tailor represents a tailor shop profile
type Tailor struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ShopName          string         `gorm:"size:255;not null" json:"shop_name"`
	Phone             *string        `gorm:"size:50" json:"phone,omitempty"`
	Street            *string        `gorm:"size:255" json:"street,omitempty"`
	City              *string        `gorm:"size:100;index" json:"city,omitempty"`
	Bio               *string        `gorm:"type:text" json:"bio,omitempty"`
	Services          *string        `gorm:"type:text" json:"services,omitempty"`
	DeliveryAvailable bool           `gorm:"default:false" json:"delivery_available"`
	Rating            float64        `gorm:"default:0" json:"rating"`
	LogoPath          *string        `gorm:"size:255" json:"logo_path,omitempty"`
	TermsText         *string        `gorm:"type:text" json:"terms_text,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `gorm:"foreignKey:TailorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tailor profile
func (t *Tailor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tailor model
func (Tailor) TableName() string {
	return "tailors"
}
