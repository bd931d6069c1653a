package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Reviews go away with their cafe through ON DELETE CASCADE.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	CafeID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_cafe_created,priority:1"`
	ReviewerName string    `gorm:"type:varchar(255);not null"`
	Rating       int       `gorm:"type:smallint;not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment      string    `gorm:"type:varchar(1000);not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_reviews_cafe_created,priority:2,sort:desc"`

	Cafe CafeModel `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
