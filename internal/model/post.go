package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is an article published under a category for a faculty.
type Post struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Slug           string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	Image          string    `json:"image" gorm:"size:255;not null"`
	SEODescription string    `json:"seo_description" gorm:"column:seo_description;type:text"`
	SEOKeywords    string    `json:"seo_keywords" gorm:"column:seo_keywords;type:text"`
	CategoryID     uuid.UUID `json:"category_id" gorm:"type:char(36);not null;index"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	FacultyID      uuid.UUID `json:"faculty_id" gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Deleting any parent row removes its posts.
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Faculty  *Faculty  `json:"faculty,omitempty" gorm:"foreignKey:FacultyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
