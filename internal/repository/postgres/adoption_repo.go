package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
)

type AdoptionRepo struct {
	pool *pgxpool.Pool
}

func NewAdoptionRepo(pool *pgxpool.Pool) *AdoptionRepo {
	return &AdoptionRepo{pool: pool}
}

const adoptionColumns = "id, status, message, pet_id, applicant_id, created_at, updated_at"

func (r *AdoptionRepo) Create(ctx context.Context, a *domain.Adoption) error {
	query := `
		INSERT INTO adoptions (id, status, message, pet_id, applicant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Status, a.Message, a.PetID, a.ApplicantID,
		a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AdoptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Adoption, error) {
	var a domain.Adoption
	err := r.pool.QueryRow(ctx, "SELECT "+adoptionColumns+" FROM adoptions WHERE id = $1", id).Scan(
		&a.ID, &a.Status, &a.Message, &a.PetID, &a.ApplicantID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

// List joins pets only when the name filter requires it; plain listings
// stay single-table.
func (r *AdoptionRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Adoption, error) {
	var args []any
	var query string
	withPet := params.Name != ""

	if withPet {
		query = `
			SELECT a.id, a.status, a.message, a.pet_id, a.applicant_id, a.created_at, a.updated_at,
			       p.id, p.name, p.description, p.sex, p.age, p.breed, p.photo_urls, p.status, p.created_at, p.updated_at
			FROM adoptions a
			JOIN pets p ON p.id = a.pet_id`

		args = append(args, "%"+params.Name+"%")
		query += fmt.Sprintf(" WHERE p.name ILIKE $%d", len(args))
	} else {
		query = "SELECT " + adoptionColumns + " FROM adoptions"
	}

	if params.Status != "" {
		args = append(args, params.Status)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE status = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND a.status = $%d", len(args))
		}
	}

	orderCol := "created_at"
	if withPet {
		orderCol = "a.created_at"
	}
	if params.Sort == "ASC" {
		query += " ORDER BY " + orderCol + " ASC"
	} else {
		query += " ORDER BY " + orderCol + " DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adoptions []domain.Adoption
	for rows.Next() {
		var a domain.Adoption
		if withPet {
			var p domain.Pet
			if err := rows.Scan(
				&a.ID, &a.Status, &a.Message, &a.PetID, &a.ApplicantID, &a.CreatedAt, &a.UpdatedAt,
				&p.ID, &p.Name, &p.Description, &p.Sex, &p.Age, &p.Breed, &p.PhotoURLs, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			); err != nil {
				return nil, err
			}
			a.Pet = &p
		} else {
			if err := rows.Scan(
				&a.ID, &a.Status, &a.Message, &a.PetID, &a.ApplicantID, &a.CreatedAt, &a.UpdatedAt,
			); err != nil {
				return nil, err
			}
		}
		adoptions = append(adoptions, a)
	}
	return adoptions, rows.Err()
}

func (r *AdoptionRepo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.Adoption, error) {
	return r.list(ctx, "SELECT "+adoptionColumns+" FROM adoptions WHERE pet_id = $1 ORDER BY created_at DESC", petID)
}

func (r *AdoptionRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Adoption, error) {
	return r.list(ctx, "SELECT "+adoptionColumns+" FROM adoptions WHERE applicant_id = $1 ORDER BY created_at DESC", applicantID)
}

func (r *AdoptionRepo) GetPending(ctx context.Context, petID, applicantID uuid.UUID) (*domain.Adoption, error) {
	var a domain.Adoption
	query := "SELECT " + adoptionColumns + " FROM adoptions WHERE pet_id = $1 AND applicant_id = $2 AND status = $3"
	err := r.pool.QueryRow(ctx, query, petID, applicantID, domain.AdoptionPending).Scan(
		&a.ID, &a.Status, &a.Message, &a.PetID, &a.ApplicantID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

func (r *AdoptionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE adoptions SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	return err
}

// Approve flips the adoption to approved and the pet to adopted atomically.
func (r *AdoptionRepo) Approve(ctx context.Context, adoptionID, petID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	if _, err := tx.Exec(ctx,
		`UPDATE adoptions SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.AdoptionApproved, now, adoptionID,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE pets SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.PetAdopted, now, petID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AdoptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM adoptions WHERE id = $1`, id)
	return err
}

func (r *AdoptionRepo) list(ctx context.Context, query string, arg any) ([]domain.Adoption, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adoptions []domain.Adoption
	for rows.Next() {
		var a domain.Adoption
		if err := rows.Scan(
			&a.ID, &a.Status, &a.Message, &a.PetID, &a.ApplicantID,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		adoptions = append(adoptions, a)
	}
	return adoptions, rows.Err()
}
