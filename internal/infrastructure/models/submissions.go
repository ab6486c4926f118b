package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Application struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FullName      string      `gorm:"type:varchar(200);not null"`
	Email         string      `gorm:"type:varchar(254);not null"`
	Phone         string      `gorm:"type:varchar(20);not null"`
	College       string      `gorm:"type:varchar(200);not null"`
	CGPA          float64     `gorm:"column:cgpa;type:numeric(4,2);not null"`
	YearOfPassing int         `gorm:"not null"`
	Experience    string      `gorm:"type:text;not null"`
	Skills        string      `gorm:"type:text;not null"`
	Resume        null.String `gorm:"type:varchar(255)"`
	AppliedAt     time.Time   `gorm:"autoCreateTime;index"`
}

func (Application) TableName() string { return "career_applications" }

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

type Inquiry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	CPUModel  string    `gorm:"column:cpu_model;type:varchar(120);not null"`
	Quantity  int       `gorm:"not null"`
	RAM       string    `gorm:"column:ram;type:varchar(60)"`
	Storage   string    `gorm:"type:varchar(60)"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (Inquiry) TableName() string { return "cpu_inquiries" }

type HackathonTeam struct {
	ID                uuid.UUID              `gorm:"type:uuid;primaryKey"`
	TeamName          string                 `gorm:"type:varchar(200);not null"`
	TotalParticipants int                    `gorm:"not null"`
	Participants      []HackathonParticipant `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time              `gorm:"index"`
}

type HackathonParticipant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Branch    string    `gorm:"type:varchar(100)"`
	Section   string    `gorm:"type:varchar(20)"`
	Year      string    `gorm:"type:varchar(20)"`
	Role      string    `gorm:"type:varchar(10);not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}
