package adaptor

import (
	"encoding/json"
	"net/http"

	"doctor-appointment/internal/dto/request"
	"doctor-appointment/internal/usecase"
	"doctor-appointment/pkg/utils"

	"go.uber.org/zap"
)

type DoctorHandler struct {
	service usecase.DoctorService
	log     *zap.Logger
}

func NewDoctorHandler(service usecase.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/doctor/register
func (h *DoctorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.DoctorRegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "register doctor")
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /api/doctor/login
func (h *DoctorHandler) Login(w http.ResponseWriter, r *http.Request) {
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
		writeServiceError(w, h.log, err, "login doctor")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/doctor/logout
func (h *DoctorHandler) Logout(w http.ResponseWriter, r *http.Request) {
	rawToken, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), rawToken); err != nil {
		writeServiceError(w, h.log, err, "logout doctor")
		return
	}

	utils.ResponseSuccess(w, "Doctor logged out successfully", nil)
}

// GetProfile handles GET /api/doctor/profile
func (h *DoctorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), doctorID)
	if err != nil {
		writeServiceError(w, h.log, err, "get doctor profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}
