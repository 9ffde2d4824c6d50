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

var ErrPetNotFound = errors.New("pet not found")

type PetService struct {
	petRepo repository.PetRepository
}

func NewPetService(petRepo repository.PetRepository) *PetService {
	return &PetService{petRepo: petRepo}
}

type CreatePetInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sex         string   `json:"sex"`
	Age         float64  `json:"age"`
	Breed       string   `json:"breed"`
	PhotoURLs   []string `json:"photo_urls"`
}

type UpdatePetInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Sex         *string   `json:"sex"`
	Age         *float64  `json:"age"`
	Breed       *string   `json:"breed"`
	PhotoURLs   *[]string `json:"photo_urls"`
	Status      *string   `json:"status"`
}

func (s *PetService) Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error) {
	now := time.Now()
	pet := &domain.Pet{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Sex:         domain.Sex(input.Sex),
		Age:         input.Age,
		Breed:       input.Breed,
		PhotoURLs:   input.PhotoURLs,
		Status:      domain.PetAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return pet, nil
}

func (s *PetService) List(ctx context.Context, params repository.ListParams) ([]domain.Pet, error) {
	return s.petRepo.List(ctx, params)
}

func (s *PetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

func (s *PetService) Update(ctx context.Context, id uuid.UUID, input UpdatePetInput) (*domain.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Description != nil {
		pet.Description = *input.Description
	}
	if input.Sex != nil {
		pet.Sex = domain.Sex(*input.Sex)
	}
	if input.Age != nil {
		pet.Age = *input.Age
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.PhotoURLs != nil {
		pet.PhotoURLs = *input.PhotoURLs
	}
	if input.Status != nil {
		pet.Status = domain.PetStatus(*input.Status)
	}
	pet.UpdatedAt = time.Now()

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, id uuid.UUID) error {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	return s.petRepo.Delete(ctx, id)
}
