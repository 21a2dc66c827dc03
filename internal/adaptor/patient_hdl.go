package adaptor

import (
	"encoding/json"
	"net/http"

	"doctor-appointment/internal/dto/request"
	"doctor-appointment/internal/usecase"
	"doctor-appointment/pkg/utils"

	"go.uber.org/zap"
)

type PatientHandler struct {
	service usecase.PatientService
	log     *zap.Logger
}

func NewPatientHandler(service usecase.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/patient/register
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.PatientRegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid or missing JSON payload", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "register patient")
		return
	}

	utils.ResponseCreated(w, "Registered successfully", resp)
}

// Login handles POST /api/patient/login
func (h *PatientHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid or missing JSON payload", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login patient")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/patient/logout
func (h *PatientHandler) Logout(w http.ResponseWriter, r *http.Request) {
	rawToken, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), rawToken); err != nil {
		writeServiceError(w, h.log, err, "logout patient")
		return
	}

	utils.ResponseSuccess(w, "Patient logged out successfully", nil)
}

// GetProfile handles GET /api/patient/profile
func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	patientID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), patientID)
	if err != nil {
		writeServiceError(w, h.log, err, "get patient profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}
