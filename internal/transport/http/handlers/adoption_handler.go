package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/service"
	"github.com/Sasha125588/pet-shelter/pkg/validator"
)

type AdoptionHandler struct {
	adoptionService *service.AdoptionService
}

func NewAdoptionHandler(adoptionService *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

type createAdoptionRequest struct {
	PetID       string `json:"pet_id"`
	ApplicantID string `json:"applicant_id"`
	Message     string `json:"message"`
}

func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	errs := validator.ValidateCreateAdoption(req.Message)

	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		errs.Add("pet_id", "Invalid pet ID")
	}
	applicantID, err := uuid.Parse(req.ApplicantID)
	if err != nil {
		errs.Add("applicant_id", "Invalid applicant ID")
	}

	if errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	adoption, err := h.adoptionService.Create(r.Context(), service.CreateAdoptionInput{
		PetID:       petID,
		ApplicantID: applicantID,
		Message:     req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPetNotFound):
			writeError(w, http.StatusBadRequest, "PET_NOT_FOUND", "Pet not found")
		case errors.Is(err, service.ErrPetAlreadyAdopted):
			writeError(w, http.StatusBadRequest, "PET_ADOPTED", "Pet is already adopted")
		case errors.Is(err, service.ErrApplicantNotFound):
			writeError(w, http.StatusBadRequest, "APPLICANT_NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrDuplicateApplication):
			writeError(w, http.StatusConflict, "DUPLICATE_APPLICATION", "Pending application for this pet already exists")
		default:
			log.Printf("ERROR create adoption: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"adoption": adoption})
}

func (h *AdoptionHandler) List(w http.ResponseWriter, r *http.Request) {
	params := listParams(r)

	if errs := validator.ValidateAdoptionListQuery(params.Status, params.Sort); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	adoptions, err := h.adoptionService.List(r.Context(), params)
	if err != nil {
		log.Printf("ERROR list adoptions: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if adoptions == nil {
		adoptions = []domain.Adoption{}
	}

	writeSuccess(w, http.StatusOK, map[string]any{"adoptions": adoptions})
}

func (h *AdoptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	adoptionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid adoption ID")
		return
	}

	adoption, err := h.adoptionService.GetByID(r.Context(), adoptionID)
	if err != nil {
		if errors.Is(err, service.ErrAdoptionNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Adoption not found")
		} else {
			log.Printf("ERROR get adoption: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"adoption": adoption})
}

func (h *AdoptionHandler) ListByPet(w http.ResponseWriter, r *http.Request) {
	petID, err := uuid.Parse(r.PathValue("petId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	adoptions, err := h.adoptionService.ListByPet(r.Context(), petID)
	if err != nil {
		log.Printf("ERROR list adoptions by pet: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if adoptions == nil {
		adoptions = []domain.Adoption{}
	}

	writeSuccess(w, http.StatusOK, map[string]any{"adoptions": adoptions})
}

func (h *AdoptionHandler) ListByApplicant(w http.ResponseWriter, r *http.Request) {
	applicantID, err := uuid.Parse(r.PathValue("applicantId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid applicant ID")
		return
	}

	adoptions, err := h.adoptionService.ListByApplicant(r.Context(), applicantID)
	if err != nil {
		log.Printf("ERROR list adoptions by applicant: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if adoptions == nil {
		adoptions = []domain.Adoption{}
	}

	writeSuccess(w, http.StatusOK, map[string]any{"adoptions": adoptions})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdoptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adoptionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid adoption ID")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateAdoptionStatus(req.Status); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	adoption, err := h.adoptionService.UpdateStatus(r.Context(), adoptionID, domain.AdoptionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdoptionNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Adoption not found")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusBadRequest, "INVALID_TRANSITION", "Adoption status cannot leave a final state")
		default:
			log.Printf("ERROR update adoption status: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"adoption": adoption})
}

func (h *AdoptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adoptionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid adoption ID")
		return
	}

	if err := h.adoptionService.Delete(r.Context(), adoptionID); err != nil {
		if errors.Is(err, service.ErrAdoptionNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Adoption not found")
		} else {
			log.Printf("ERROR delete adoption: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, true)
}
