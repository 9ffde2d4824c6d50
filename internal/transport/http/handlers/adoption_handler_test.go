package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
	"github.com/Sasha125588/pet-shelter/internal/service"
)

// Minimal in-memory repos, enough to drive the handlers end to end.

type stubPetRepo struct{ pets map[uuid.UUID]domain.Pet }

func (r *stubPetRepo) Create(ctx context.Context, p *domain.Pet) error {
	r.pets[p.ID] = *p
	return nil
}

func (r *stubPetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *stubPetRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, p := range r.pets {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPetRepo) Update(ctx context.Context, p *domain.Pet) error {
	r.pets[p.ID] = *p
	return nil
}

func (r *stubPetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.pets, id)
	return nil
}

type stubUserRepo struct{ users map[uuid.UUID]domain.User }

func (r *stubUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type stubAdoptionRepo struct {
	adoptions map[uuid.UUID]domain.Adoption
	pets      *stubPetRepo
}

func (r *stubAdoptionRepo) Create(ctx context.Context, a *domain.Adoption) error {
	r.adoptions[a.ID] = *a
	return nil
}

func (r *stubAdoptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Adoption, error) {
	a, ok := r.adoptions[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *stubAdoptionRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Adoption, error) {
	var out []domain.Adoption
	for _, a := range r.adoptions {
		if params.Status != "" && string(a.Status) != params.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *stubAdoptionRepo) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.Adoption, error) {
	var out []domain.Adoption
	for _, a := range r.adoptions {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAdoptionRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Adoption, error) {
	var out []domain.Adoption
	for _, a := range r.adoptions {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAdoptionRepo) GetPending(ctx context.Context, petID, applicantID uuid.UUID) (*domain.Adoption, error) {
	for _, a := range r.adoptions {
		if a.PetID == petID && a.ApplicantID == applicantID && a.Status == domain.AdoptionPending {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r *stubAdoptionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AdoptionStatus) error {
	a := r.adoptions[id]
	a.Status = status
	r.adoptions[id] = a
	return nil
}

func (r *stubAdoptionRepo) Approve(ctx context.Context, adoptionID, petID uuid.UUID) error {
	a := r.adoptions[adoptionID]
	a.Status = domain.AdoptionApproved
	r.adoptions[adoptionID] = a

	p := r.pets.pets[petID]
	p.Status = domain.PetAdopted
	r.pets.pets[petID] = p
	return nil
}

func (r *stubAdoptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.adoptions, id)
	return nil
}

type adoptionTestServer struct {
	mux   *http.ServeMux
	pets  *stubPetRepo
	users *stubUserRepo
}

func newAdoptionTestServer() *adoptionTestServer {
	pets := &stubPetRepo{pets: map[uuid.UUID]domain.Pet{}}
	users := &stubUserRepo{users: map[uuid.UUID]domain.User{}}
	adoptions := &stubAdoptionRepo{adoptions: map[uuid.UUID]domain.Adoption{}, pets: pets}

	svc := service.NewAdoptionService(adoptions, pets, users)
	h := NewAdoptionHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/adoptions", h.Create)
	mux.HandleFunc("GET /api/v1/adoptions", h.List)
	mux.HandleFunc("GET /api/v1/adoptions/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/adoptions/{id}/status", h.UpdateStatus)
	mux.HandleFunc("DELETE /api/v1/adoptions/{id}", h.Delete)

	return &adoptionTestServer{mux: mux, pets: pets, users: users}
}

func (s *adoptionTestServer) seed(t *testing.T, petStatus domain.PetStatus) (petID, userID uuid.UUID) {
	t.Helper()
	petID, userID = uuid.New(), uuid.New()
	s.pets.pets[petID] = domain.Pet{ID: petID, Name: "Bobik", Status: petStatus, CreatedAt: time.Now()}
	s.users.users[userID] = domain.User{ID: userID, Username: "alice", Email: "a@x.com"}
	return petID, userID
}

func (s *adoptionTestServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestAdoptionHandlerCreate(t *testing.T) {
	t.Run("created with pending status", func(t *testing.T) {
		s := newAdoptionTestServer()
		petID, userID := s.seed(t, domain.PetAvailable)

		body := `{"pet_id":"` + petID.String() + `","applicant_id":"` + userID.String() + `","message":"I have a big yard and lots of love to give."}`
		rec, envelope := s.do(t, http.MethodPost, "/api/v1/adoptions", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, envelope["success"])

		data := envelope["data"].(map[string]any)
		adoption := data["adoption"].(map[string]any)
		assert.Equal(t, "pending", adoption["status"])
	})

	t.Run("adopted pet is a bad request", func(t *testing.T) {
		s := newAdoptionTestServer()
		petID, userID := s.seed(t, domain.PetAdopted)

		body := `{"pet_id":"` + petID.String() + `","applicant_id":"` + userID.String() + `","message":"I have a big yard and lots of love to give."}`
		rec, envelope := s.do(t, http.MethodPost, "/api/v1/adoptions", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, envelope["success"])

		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "PET_ADOPTED", errObj["code"])
	})

	t.Run("short message rejected before service runs", func(t *testing.T) {
		s := newAdoptionTestServer()
		petID, userID := s.seed(t, domain.PetAvailable)

		body := `{"pet_id":"` + petID.String() + `","applicant_id":"` + userID.String() + `","message":"hi"}`
		rec, envelope := s.do(t, http.MethodPost, "/api/v1/adoptions", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	})

	t.Run("malformed uuid rejected", func(t *testing.T) {
		s := newAdoptionTestServer()

		body := `{"pet_id":"not-a-uuid","applicant_id":"also-not","message":"I have a big yard and lots of love to give."}`
		rec, envelope := s.do(t, http.MethodPost, "/api/v1/adoptions", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errObj := envelope["error"].(map[string]any)
		fields := errObj["fields"].(map[string]any)
		assert.Contains(t, fields, "pet_id")
		assert.Contains(t, fields, "applicant_id")
	})
}

func TestAdoptionHandlerStatusFlow(t *testing.T) {
	s := newAdoptionTestServer()
	petID, userID := s.seed(t, domain.PetAvailable)

	body := `{"pet_id":"` + petID.String() + `","applicant_id":"` + userID.String() + `","message":"I have a big yard and lots of love to give."}`
	rec, envelope := s.do(t, http.MethodPost, "/api/v1/adoptions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	adoption := envelope["data"].(map[string]any)["adoption"].(map[string]any)
	adoptionID := adoption["id"].(string)

	rec, envelope = s.do(t, http.MethodPatch, "/api/v1/adoptions/"+adoptionID+"/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := envelope["data"].(map[string]any)["adoption"].(map[string]any)
	assert.Equal(t, "approved", updated["status"])

	// side effect on the pet
	pet := s.pets.pets[petID]
	assert.Equal(t, domain.PetAdopted, pet.Status)

	// approved is terminal
	rec, envelope = s.do(t, http.MethodPatch, "/api/v1/adoptions/"+adoptionID+"/status", `{"status":"pending"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_TRANSITION", errObj["code"])
}

func TestAdoptionHandlerNotFound(t *testing.T) {
	s := newAdoptionTestServer()

	rec, envelope := s.do(t, http.MethodDelete, "/api/v1/adoptions/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, envelope["success"])

	rec, _ = s.do(t, http.MethodGet, "/api/v1/adoptions/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/adoptions/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
