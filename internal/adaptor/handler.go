package adaptor

import (
	"net/http"

	"doctor-appointment/internal/apperr"
	"doctor-appointment/internal/usecase"
	"doctor-appointment/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Doctor  *DoctorHandler
	Patient *PatientHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Doctor:  NewDoctorHandler(service.Doctor, log),
		Patient: NewPatientHandler(service.Patient, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}

// writeServiceError maps a service error onto the response envelope.
// Internal errors get a generic message; everything else surfaces its own.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed", zap.Error(err))
	utils.ResponseError(w, appErr.HTTPStatus(), appErr.Message)
}
