package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
)

func TestPetCreateDefaultsToAvailable(t *testing.T) {
	svc := NewPetService(newMemPetRepo())

	pet, err := svc.Create(context.Background(), CreatePetInput{
		Name: "Bobik",
		Sex:  "female",
		Age:  1.6,
	})
	require.NoError(t, err)
	require.Equal(t, domain.PetAvailable, pet.Status)
	require.NotEqual(t, uuid.Nil, pet.ID)
}

func TestPetList(t *testing.T) {
	ctx := context.Background()
	repo := newMemPetRepo()
	svc := NewPetService(repo)

	base := time.Now()
	seed := []domain.Pet{
		{ID: uuid.New(), Name: "Bobik", Status: domain.PetAvailable, CreatedAt: base},
		{ID: uuid.New(), Name: "Murka", Status: domain.PetAvailable, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Name: "Rex", Status: domain.PetAdopted, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	t.Run("available ascending", func(t *testing.T) {
		pets, err := svc.List(ctx, repository.ListParams{Status: "available", Sort: "ASC"})
		require.NoError(t, err)
		require.Len(t, pets, 2)
		require.Equal(t, "Bobik", pets[0].Name)
		require.Equal(t, "Murka", pets[1].Name)
		for _, p := range pets {
			require.Equal(t, domain.PetAvailable, p.Status)
		}
	})

	t.Run("default order is descending", func(t *testing.T) {
		pets, err := svc.List(ctx, repository.ListParams{})
		require.NoError(t, err)
		require.Len(t, pets, 3)
		require.Equal(t, "Rex", pets[0].Name)
	})

	t.Run("name substring match is case-insensitive", func(t *testing.T) {
		pets, err := svc.List(ctx, repository.ListParams{Name: "bob"})
		require.NoError(t, err)
		require.Len(t, pets, 1)
		require.Equal(t, "Bobik", pets[0].Name)
	})
}

func TestPetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newMemPetRepo()
	svc := NewPetService(repo)

	pet, err := svc.Create(ctx, CreatePetInput{Name: "Bobik", Sex: "female", Age: 1.6})
	require.NoError(t, err)

	name := "Sharik"
	status := "pending"
	updated, err := svc.Update(ctx, pet.ID, UpdatePetInput{Name: &name, Status: &status})
	require.NoError(t, err)
	require.Equal(t, "Sharik", updated.Name)
	require.Equal(t, domain.PetPending, updated.Status)
	// untouched fields survive
	require.Equal(t, domain.SexFemale, updated.Sex)
	require.Equal(t, 1.6, updated.Age)

	_, err = svc.Update(ctx, uuid.New(), UpdatePetInput{Name: &name})
	require.ErrorIs(t, err, ErrPetNotFound)
}

func TestPetDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemPetRepo()
	svc := NewPetService(repo)

	pet, err := svc.Create(ctx, CreatePetInput{Name: "Bobik", Sex: "male", Age: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, pet.ID))

	_, err = svc.GetByID(ctx, pet.ID)
	require.ErrorIs(t, err, ErrPetNotFound)

	require.ErrorIs(t, svc.Delete(ctx, pet.ID), ErrPetNotFound)
}
