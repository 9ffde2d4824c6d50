package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
)

// In-memory repositories backing the service tests.

type memUserRepo struct {
	byID map[uuid.UUID]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uuid.UUID]domain.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.byID[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type memPetRepo struct {
	byID map[uuid.UUID]domain.Pet
}

func newMemPetRepo() *memPetRepo {
	return &memPetRepo{byID: map[uuid.UUID]domain.Pet{}}
}

func (r *memPetRepo) Create(ctx context.Context, pet *domain.Pet) error {
	r.byID[pet.ID] = *pet
	return nil
}

func (r *memPetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memPetRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Pet, error) {
	var pets []domain.Pet
	for _, p := range r.byID {
		if params.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Name)) {
			continue
		}
		if params.Status != "" && string(p.Status) != params.Status {
			continue
		}
		pets = append(pets, p)
	}

	sort.Slice(pets, func(i, j int) bool {
		if params.Sort == "ASC" {
			return pets[i].CreatedAt.Before(pets[j].CreatedAt)
		}
		return pets[i].CreatedAt.After(pets[j].CreatedAt)
	})
	return pets, nil
}

func (r *memPetRepo) Update(ctx context.Context, pet *domain.Pet) error {
	r.byID[pet.ID] = *pet
	return nil
}

func (r *memPetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type memAdoptionRepo struct {
	byID map[uuid.UUID]domain.Adoption
	pets *memPetRepo
}

func newMemAdoptionRepo(pets *memPetRepo) *memAdoptionRepo {
	return &memAdoptionRepo{byID: map[uuid.UUID]domain.Adoption{}, pets: pets}
}

func (r *memAdoptionRepo) Create(ctx context.Context, a *domain.Adoption) error {
	r.byID[a.ID] = *a
	return nil
}

func (r *memAdoptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAdoptionRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	for _, a := range r.byID {
		if params.Name != "" {
			pet, ok := r.pets.byID[a.PetID]
			if !ok || !strings.Contains(strings.ToLower(pet.Name), strings.ToLower(params.Name)) {
				continue
			}
			a.Pet = &pet
		}
		if params.Status != "" && string(a.Status) != params.Status {
			continue
		}
		adoptions = append(adoptions, a)
	}

	sort.Slice(adoptions, func(i, j int) bool {
		if params.Sort == "ASC" {
			return adoptions[i].CreatedAt.Before(adoptions[j].CreatedAt)
		}
		return adoptions[i].CreatedAt.After(adoptions[j].CreatedAt)
	})
	return adoptions, nil
}

func (r *memAdoptionRepo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	for _, a := range r.byID {
		if a.PetID == petID {
			adoptions = append(adoptions, a)
		}
	}
	return adoptions, nil
}

func (r *memAdoptionRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Adoption, error) {
	var adoptions []domain.Adoption
	for _, a := range r.byID {
		if a.ApplicantID == applicantID {
			adoptions = append(adoptions, a)
		}
	}
	return adoptions, nil
}

func (r *memAdoptionRepo) GetPending(ctx context.Context, petID, applicantID uuid.UUID) (*domain.Adoption, error) {
	for _, a := range r.byID {
		if a.PetID == petID && a.ApplicantID == applicantID && a.Status == domain.AdoptionPending {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAdoptionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus) error {
	a := r.byID[id]
	a.Status = status
	r.byID[id] = a
	return nil
}

func (r *memAdoptionRepo) Approve(ctx context.Context, adoptionID, petID uuid.UUID) error {
	a := r.byID[adoptionID]
	a.Status = domain.AdoptionApproved
	r.byID[adoptionID] = a

	p := r.pets.byID[petID]
	p.Status = domain.PetAdopted
	r.pets.byID[petID] = p
	return nil
}

func (r *memAdoptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}
