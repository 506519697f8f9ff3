package wire

import (
	"net/http"

	"stay-booking/internal/adaptor"
	"stay-booking/internal/data/repository"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/middleware"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	jwtSecret := []byte(config.JWT.Secret)

	wireAuth(r, handler.Auth)
	wireListing(r, handler.Listing, jwtSecret, logger)
	wireBooking(r, handler.Booking, jwtSecret, logger)
	wireAdmin(r, handler.Admin, jwtSecret, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
