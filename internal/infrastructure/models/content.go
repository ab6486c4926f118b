package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
)

type MOU struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title        string      `gorm:"type:varchar(200);not null"`
	Organization string      `gorm:"type:varchar(200);not null"`
	Description  string      `gorm:"type:text"`
	Logo         null.String `gorm:"type:varchar(255)"`
	Document     null.String `gorm:"type:varchar(255)"`
	SignedOn     null.Time
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"index"`
}

func (MOU) TableName() string { return "mous" }

type GalleryImage struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title     string      `gorm:"type:varchar(200)"`
	Image     string      `gorm:"type:varchar(255);not null"`
	Caption   null.String `gorm:"type:text"`
	CreatedAt time.Time   `gorm:"index"`
}

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"type:varchar(200);not null"`
	Description  string         `gorm:"type:text"`
	Image        null.String    `gorm:"type:varchar(255)"`
	Technologies pq.StringArray `gorm:"type:text[];default:'{}'"`
	Link         null.String    `gorm:"type:text"`
	CreatedAt    time.Time
}

type CommunityItem struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title       string      `gorm:"type:varchar(200);not null"`
	Description string      `gorm:"type:text"`
	Image       null.String `gorm:"type:varchar(255)"`
	Section     string      `gorm:"type:varchar(40);not null;index"`
	Link        null.String `gorm:"type:text"`
	CreatedAt   time.Time   `gorm:"index"`
}

// All lists every model for auto-migration, parents before children.
func All() []interface{} {
	return []interface{}{
		&Application{},
		&ContactMessage{},
		&Inquiry{},
		&HackathonTeam{},
		&HackathonParticipant{},
		&MOU{},
		&GalleryImage{},
		&Project{},
		&CommunityItem{},
	}
}
