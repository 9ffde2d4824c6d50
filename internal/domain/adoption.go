package domain

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionApproved AdoptionStatus = "approved"
	AdoptionRejected AdoptionStatus = "rejected"
)

type Adoption struct {
	ID          uuid.UUID      `json:"id"`
	Status      AdoptionStatus `json:"status"`
	Message     string         `json:"message"`
	PetID       uuid.UUID      `json:"pet_id"`
	ApplicantID uuid.UUID      `json:"applicant_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Pet is populated only by queries that join pets explicitly.
	Pet *Pet `json:"pet,omitempty"`
}
