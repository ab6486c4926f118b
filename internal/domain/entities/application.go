package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Application is a career application submitted from the careers page.
type Application struct {
	ID            uuid.UUID   `json:"id"`
	FullName      string      `json:"full_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	College       string      `json:"college"`
	CGPA          float64     `json:"cgpa"`
	YearOfPassing int         `json:"year_of_passing"`
	Experience    string      `json:"experience"`
	Skills        string      `json:"skills"`
	ResumePath    null.String `json:"-"`
	ResumeURL     null.String `json:"resume"`
	AppliedAt     time.Time   `json:"applied_at"`
}
