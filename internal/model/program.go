package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Program is a study program; it is removed together with its faculty.
type Program struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	FacultyID uuid.UUID `json:"faculty_id" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Faculty *Faculty `json:"faculty,omitempty" gorm:"foreignKey:FacultyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
