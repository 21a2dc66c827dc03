package wire

import (
	"doctor-appointment/internal/adaptor"
	"doctor-appointment/internal/data/entity"
	"doctor-appointment/pkg/middleware"
	"doctor-appointment/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDoctor(
	r chi.Router,
	doctorHandler *adaptor.DoctorHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/doctor/register", doctorHandler.Register)
	r.Post("/api/doctor/login", doctorHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RoleDoctor)),
	).Group(func(r chi.Router) {
		r.Post("/api/doctor/logout", doctorHandler.Logout)
		r.Get("/api/doctor/profile", doctorHandler.GetProfile)
	})
}
