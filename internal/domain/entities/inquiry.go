package entities

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a hardware (CPU) purchase inquiry.
type Inquiry struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CPUModel  string    `json:"cpu_model"`
	Quantity  int       `json:"quantity"`
	RAM       string    `json:"ram"`
	Storage   string    `json:"storage"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
