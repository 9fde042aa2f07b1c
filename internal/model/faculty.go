package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Faculty is an academic unit owning posts, programs and users.
type Faculty struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Initial   string    `json:"initial" gorm:"size:255;not null"`
	Desc      string    `json:"desc" gorm:"column:desc;type:text;not null"`
	Domain    string    `json:"domain" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (f *Faculty) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
