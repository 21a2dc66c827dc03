package wire

import (
	"net/http"

	"doctor-appointment/internal/adaptor"
	"doctor-appointment/internal/data/repository"
	"doctor-appointment/internal/usecase"
	"doctor-appointment/pkg/middleware"
	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, tokens *token.Manager, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireDoctor(r, handler.Doctor, tokens, logger)
	wirePatient(r, handler.Patient, tokens, logger)
	wireAdmin(r, handler.Admin, tokens, logger)

	// Health check endpoints
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Server is running", nil)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
