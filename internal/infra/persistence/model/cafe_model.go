package model

import (
	"time"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CafeModel is the GORM-specific struct for the 'cafes' table.
// The point used by PostGIS queries is built from Longitude/Latitude.
type CafeModel struct {
	ID            uuid.UUID                                          `gorm:"type:uuid;primary_key"`
	Slug          string                                             `gorm:"type:varchar(255);not null;uniqueIndex:idx_cafes_slug"`
	Name          string                                             `gorm:"type:varchar(255);not null"`
	Description   string                                             `gorm:"type:text;not null;default:''"`
	Address       string                                             `gorm:"type:text;not null"`
	Longitude     float64                                            `gorm:"type:double precision;not null"`
	Latitude      float64                                            `gorm:"type:double precision;not null"`
	Phone         string                                             `gorm:"type:varchar(50);not null;default:''"`
	Website       string                                             `gorm:"type:varchar(512);not null;default:''"`
	Photos        pq.StringArray                                     `gorm:"type:text[];not null;default:'{}'"`
	PriceRange    string                                             `gorm:"type:varchar(3);not null;default:'$$'"`
	Features      datatypes.JSONMap                                  `gorm:"type:jsonb;not null;default:'{}'"`
	OpeningHours  datatypes.JSONType[map[string]entity.OpeningHours] `gorm:"type:jsonb;not null;default:'{}'"`
	Tags          pq.StringArray                                     `gorm:"type:text[];not null;default:'{}'"`
	AverageRating float64                                            `gorm:"type:double precision;not null;default:0"`
	TotalReviews  int64                                              `gorm:"not null;default:0"`
	Featured      bool                                               `gorm:"not null;default:false;index:idx_cafes_moderation"`
	Verified      bool                                               `gorm:"not null;default:false;index:idx_cafes_moderation"`
	CreatedAt     time.Time                                          `gorm:"not null;index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CafeModel) TableName() string {
	return "cafes"
}

// SubmitterContactModel is the GORM-specific struct for the 'submitter_contacts' table.
type SubmitterContactModel struct {
	CafeID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time

	Cafe CafeModel `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubmitterContactModel) TableName() string {
	return "submitter_contacts"
}
