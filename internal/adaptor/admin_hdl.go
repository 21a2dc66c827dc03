package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"doctor-appointment/internal/dto/request"
	"doctor-appointment/internal/usecase"
	"doctor-appointment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login admin")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	rawToken, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), rawToken); err != nil {
		writeServiceError(w, h.log, err, "logout admin")
		return
	}

	utils.ResponseSuccess(w, "Admin logged out successfully", nil)
}

// Create handles POST /admin/create
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerRole, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AdminCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateAdmin(r.Context(), callerRole, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create admin")
		return
	}

	utils.ResponseCreated(w, "Admin created successfully", resp)
}

// ==================== DOCTOR MODERATION ====================

// ListDoctors handles GET /admin/doctors?page=&per_page=
func (h *AdminHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	req := h.paginationFromQuery(r)

	doctors, err := h.service.ListDoctors(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list doctors")
		return
	}

	utils.ResponseSuccess(w, "Doctors retrieved successfully", doctors)
}

// ViewDoctor handles GET /admin/doctors/view?id=
func (h *AdminHandler) ViewDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromQuery(w, r)
	if !ok {
		return
	}

	doctor, err := h.service.ViewDoctor(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "view doctor")
		return
	}

	utils.ResponseSuccess(w, "Doctor retrieved successfully", doctor)
}

// ApproveDoctor handles PUT /admin/doctors/{id}/approve
func (h *AdminHandler) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	h.moderateDoctor(w, r, "Doctor approved", h.service.ApproveDoctor)
}

// RejectDoctor handles PUT /admin/doctors/{id}/reject
func (h *AdminHandler) RejectDoctor(w http.ResponseWriter, r *http.Request) {
	h.moderateDoctor(w, r, "Doctor rejected", h.service.RejectDoctor)
}

// SuspendDoctor handles PUT /admin/doctors/{id}/suspend
func (h *AdminHandler) SuspendDoctor(w http.ResponseWriter, r *http.Request) {
	h.moderateDoctor(w, r, "Doctor suspended", h.service.SuspendDoctor)
}

// ReinstateDoctor handles PUT /admin/doctors/{id}/reinstate
func (h *AdminHandler) ReinstateDoctor(w http.ResponseWriter, r *http.Request) {
	h.moderateDoctor(w, r, "Doctor reinstated", h.service.ReinstateDoctor)
}

// VerifyDoctorDocuments handles PUT /admin/doctors/{id}/verify-documents
func (h *AdminHandler) VerifyDoctorDocuments(w http.ResponseWriter, r *http.Request) {
	h.moderateDoctor(w, r, "Doctor documents verified", h.service.VerifyDoctorDocuments)
}

// ==================== PATIENT MODERATION ====================

// ListPatients handles GET /admin/patients?page=&per_page=
func (h *AdminHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	req := h.paginationFromQuery(r)

	patients, err := h.service.ListPatients(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list patients")
		return
	}

	utils.ResponseSuccess(w, "Patients retrieved successfully", patients)
}

// ViewPatient handles GET /admin/patient/view?id=
func (h *AdminHandler) ViewPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idFromQuery(w, r)
	if !ok {
		return
	}

	patient, err := h.service.ViewPatient(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "view patient")
		return
	}

	utils.ResponseSuccess(w, "Patient retrieved successfully", patient)
}

// ActivatePatient handles PUT /admin/patients/{id}/activate
func (h *AdminHandler) ActivatePatient(w http.ResponseWriter, r *http.Request) {
	h.moderatePatient(w, r, "Patient activated", h.service.ActivatePatient)
}

// DeactivatePatient handles PUT /admin/patients/{id}/deactivate
func (h *AdminHandler) DeactivatePatient(w http.ResponseWriter, r *http.Request) {
	h.moderatePatient(w, r, "Patient deactivated", h.service.DeactivatePatient)
}

// ==================== HELPERS ====================

func (h *AdminHandler) moderateDoctor(w http.ResponseWriter, r *http.Request, message string, op func(context.Context, uuid.UUID) error) {
	id, ok := h.idFromURL(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "moderate doctor")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

func (h *AdminHandler) moderatePatient(w http.ResponseWriter, r *http.Request, message string, op func(context.Context, uuid.UUID) error) {
	id, ok := h.idFromURL(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), id); err != nil {
		writeServiceError(w, h.log, err, "moderate patient")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

func (h *AdminHandler) idFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) idFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		utils.ResponseBadRequest(w, "ID is required", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    parseIntDefault(query.Get("page"), 1),
		PerPage: parseIntDefault(query.Get("per_page"), 10),
	}
}

func parseIntDefault(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
