package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Sasha125588/pet-shelter/internal/domain"
	"github.com/Sasha125588/pet-shelter/internal/repository"
	"github.com/Sasha125588/pet-shelter/internal/service"
	"github.com/Sasha125588/pet-shelter/pkg/validator"
)

type PetHandler struct {
	petService *service.PetService
}

func NewPetHandler(petService *service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCreatePet(input.Name, input.Description, input.Sex, input.Age); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	pet, err := h.petService.Create(r.Context(), input)
	if err != nil {
		log.Printf("ERROR create pet: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"pet": pet})
}

func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	params := listParams(r)

	if errs := validator.ValidatePetListQuery(params.Status, params.Sort); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	pets, err := h.petService.List(r.Context(), params)
	if err != nil {
		log.Printf("ERROR list pets: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if pets == nil {
		pets = []domain.Pet{}
	}

	writeSuccess(w, http.StatusOK, map[string]any{"pets": pets})
}

func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	petID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	pet, err := h.petService.GetByID(r.Context(), petID)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Pet not found")
		} else {
			log.Printf("ERROR get pet: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"pet": pet})
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	petID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	var input service.UpdatePetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateUpdatePet(input.Name, input.Description, input.Sex, input.Status, input.Age); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	pet, err := h.petService.Update(r.Context(), petID, input)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Pet not found")
		} else {
			log.Printf("ERROR update pet: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"pet": pet})
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	petID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	if err := h.petService.Delete(r.Context(), petID); err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Pet not found")
		} else {
			log.Printf("ERROR delete pet: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeSuccess(w, http.StatusOK, true)
}

func listParams(r *http.Request) repository.ListParams {
	q := r.URL.Query()
	return repository.ListParams{
		Name:   q.Get("name"),
		Status: q.Get("status"),
		Sort:   strings.ToUpper(q.Get("sort")),
	}
}
