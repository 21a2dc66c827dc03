package wire

import (
	"doctor-appointment/internal/adaptor"
	"doctor-appointment/internal/data/entity"
	"doctor-appointment/pkg/middleware"
	"doctor-appointment/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePatient(
	r chi.Router,
	patientHandler *adaptor.PatientHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/patient/register", patientHandler.Register)
	r.Post("/api/patient/login", patientHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RolePatient)),
	).Group(func(r chi.Router) {
		r.Post("/api/patient/logout", patientHandler.Logout)
		r.Get("/api/patient/profile", patientHandler.GetProfile)
	})
}
