package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
)

type PetRepo struct {
	pool *pgxpool.Pool
}

func NewPetRepo(pool *pgxpool.Pool) *PetRepo {
	return &PetRepo{pool: pool}
}

const petColumns = "id, name, description, sex, age, breed, photo_urls, status, created_at, updated_at"

func (r *PetRepo) Create(ctx context.Context, pet *domain.Pet) error {
	query := `
		INSERT INTO pets (id, name, description, sex, age, breed, photo_urls, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		pet.ID, pet.Name, pet.Description, pet.Sex, pet.Age,
		pet.Breed, pet.PhotoURLs, pet.Status, pet.CreatedAt, pet.UpdatedAt,
	)
	return err
}

func (r *PetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	var p domain.Pet
	err := r.pool.QueryRow(ctx, "SELECT "+petColumns+" FROM pets WHERE id = $1", id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Sex, &p.Age,
		&p.Breed, &p.PhotoURLs, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *PetRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Pet, error) {
	query := "SELECT " + petColumns + " FROM pets"
	var args []any

	if params.Name != "" {
		args = append(args, "%"+params.Name+"%")
		query += fmt.Sprintf(" WHERE name ILIKE $%d", len(args))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE status = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
	}

	if params.Sort == "ASC" {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []domain.Pet
	for rows.Next() {
		var p domain.Pet
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Sex, &p.Age,
			&p.Breed, &p.PhotoURLs, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *PetRepo) Update(ctx context.Context, pet *domain.Pet) error {
	query := `
		UPDATE pets
		SET name = $1, description = $2, sex = $3, age = $4, breed = $5,
		    photo_urls = $6, status = $7, updated_at = $8
		WHERE id = $9`

	_, err := r.pool.Exec(ctx, query,
		pet.Name, pet.Description, pet.Sex, pet.Age, pet.Breed,
		pet.PhotoURLs, pet.Status, pet.UpdatedAt, pet.ID,
	)
	return err
}

func (r *PetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return err
}
