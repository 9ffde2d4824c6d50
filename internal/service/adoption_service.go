package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
)

var (
	ErrAdoptionNotFound     = errors.New("adoption not found")
	ErrPetAlreadyAdopted    = errors.New("pet is already adopted")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrDuplicateApplication = errors.New("pending application for this pet already exists")
	ErrInvalidTransition    = errors.New("invalid adoption status transition")
)

type AdoptionService struct {
	adoptionRepo repository.AdoptionRepository
	petRepo      repository.PetRepository
	userRepo     repository.UserRepository
}

func NewAdoptionService(adoptionRepo repository.AdoptionRepository, petRepo repository.PetRepository, userRepo repository.UserRepository) *AdoptionService {
	return &AdoptionService{
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
		userRepo:     userRepo,
	}
}

type CreateAdoptionInput struct {
	PetID       uuid.UUID `json:"pet_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Message     string    `json:"message"`
}

func (s *AdoptionService) Create(ctx context.Context, input CreateAdoptionInput) (*domain.Adoption, error) {
	pet, err := s.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.Status == domain.PetAdopted {
		return nil, ErrPetAlreadyAdopted
	}

	applicant, err := s.userRepo.GetByID(ctx, input.ApplicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}

	existing, err := s.adoptionRepo.GetPending(ctx, input.PetID, input.ApplicantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	now := time.Now()
	adoption := &domain.Adoption{
		ID:          uuid.New(),
		Status:      domain.AdoptionPending,
		Message:     input.Message,
		PetID:       input.PetID,
		ApplicantID: input.ApplicantID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.adoptionRepo.Create(ctx, adoption); err != nil {
		return nil, fmt.Errorf("creating adoption: %w", err)
	}

	return adoption, nil
}

func (s *AdoptionService) List(ctx context.Context, params repository.ListParams) ([]domain.Adoption, error) {
	return s.adoptionRepo.List(ctx, params)
}

func (s *AdoptionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Adoption, error) {
	adoption, err := s.adoptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adoption == nil {
		return nil, ErrAdoptionNotFound
	}
	return adoption, nil
}

func (s *AdoptionService) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.Adoption, error) {
	return s.adoptionRepo.ListByPet(ctx, petID)
}

func (s *AdoptionService) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Adoption, error) {
	return s.adoptionRepo.ListByApplicant(ctx, applicantID)
}

// UpdateStatus applies a transition of the adoption state machine.
// pending may move to approved or rejected; both of those are terminal.
// Approval also marks the pet adopted, in the same transaction.
func (s *AdoptionService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus domain.AdoptionStatus) (*domain.Adoption, error) {
	adoption, err := s.adoptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adoption == nil {
		return nil, ErrAdoptionNotFound
	}

	if adoption.Status != domain.AdoptionPending && adoption.Status != newStatus {
		return nil, ErrInvalidTransition
	}

	switch newStatus {
	case domain.AdoptionApproved:
		if err := s.adoptionRepo.Approve(ctx, adoption.ID, adoption.PetID); err != nil {
			return nil, fmt.Errorf("approving adoption: %w", err)
		}
	default:
		if err := s.adoptionRepo.UpdateStatus(ctx, adoption.ID, newStatus); err != nil {
			return nil, fmt.Errorf("updating adoption status: %w", err)
		}
	}

	return s.adoptionRepo.GetByID(ctx, id)
}

func (s *AdoptionService) Delete(ctx context.Context, id uuid.UUID) error {
	adoption, err := s.adoptionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if adoption == nil {
		return ErrAdoptionNotFound
	}

	return s.adoptionRepo.Delete(ctx, id)
}
