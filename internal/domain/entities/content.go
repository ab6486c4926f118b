package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Marketing content below is managed outside this service and only listed here.

type MOU struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Organization string      `json:"organization"`
	Description  string      `json:"description"`
	LogoURL      null.String `json:"logo"`
	DocumentURL  null.String `json:"document"`
	SignedOn     null.Time   `json:"signed_on"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
}

type GalleryImage struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	ImageURL  string      `json:"image"`
	Caption   null.String `json:"caption"`
	CreatedAt time.Time   `json:"created_at"`
}

type Project struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ImageURL     null.String `json:"image"`
	Technologies []string    `json:"technologies"`
	Link         null.String `json:"link"`
	CreatedAt    time.Time   `json:"created_at"`
}

const CommunitySectionGiveback = "giveback"

type CommunityItem struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    null.String `json:"image"`
	Section     string      `json:"section"`
	Link        null.String `json:"link"`
	CreatedAt   time.Time   `json:"created_at"`
}
