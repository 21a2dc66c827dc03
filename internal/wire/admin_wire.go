package wire

import (
	"doctor-appointment/internal/adaptor"
	"doctor-appointment/internal/data/entity"
	"doctor-appointment/pkg/middleware"
	"doctor-appointment/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/admin/login", adminHandler.Login)

	// ==================== PROTECTED ADMIN ROUTES ====================
	// Every moderation operation requires a valid, non-revoked admin token.
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RoleAdmin), string(entity.RoleSuperAdmin)),
	).Group(func(r chi.Router) {
		r.Post("/admin/logout", adminHandler.Logout)
		r.Post("/admin/create", adminHandler.Create)

		r.Route("/admin/doctors", func(r chi.Router) {
			r.Get("/", adminHandler.ListDoctors)
			r.Get("/view", adminHandler.ViewDoctor)
			r.Put("/{id}/approve", adminHandler.ApproveDoctor)
			r.Put("/{id}/reject", adminHandler.RejectDoctor)
			r.Put("/{id}/suspend", adminHandler.SuspendDoctor)
			r.Put("/{id}/reinstate", adminHandler.ReinstateDoctor)
			r.Put("/{id}/verify-documents", adminHandler.VerifyDoctorDocuments)
		})

		r.Get("/admin/patients", adminHandler.ListPatients)
		r.Get("/admin/patient/view", adminHandler.ViewPatient)
		r.Put("/admin/patients/{id}/activate", adminHandler.ActivatePatient)
		r.Put("/admin/patients/{id}/deactivate", adminHandler.DeactivatePatient)
	})
}
