package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Sasha125588/pet-shelter/internal/domain"
)

// ListParams are the optional list filters shared by the pet and adoption
// listings. Name is a case-insensitive substring match on the pet name,
// Status an exact match, Sort is "ASC" or "DESC" over created_at.
type ListParams struct {
	Name   string
	Status string
	Sort   string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	List(ctx context.Context, params ListParams) ([]domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdoptionRepository interface {
	Create(ctx context.Context, adoption *domain.Adoption) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Adoption, error)
	List(ctx context.Context, params ListParams) ([]domain.Adoption, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.Adoption, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Adoption, error)
	GetPending(ctx context.Context, petID, applicantID uuid.UUID) (*domain.Adoption, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus) error
	// Approve marks the adoption approved and the pet adopted in a single
	// transaction so a crash cannot leave the pair half-written.
	Approve(ctx context.Context, adoptionID, petID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
