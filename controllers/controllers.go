package controllers

import (
	"errors"
	"net/http"
	"time"

	"debategame/db"
	"debategame/services"

	"github.com/rs/zerolog"
)

const storeTimeout = 10 * time.Second

var (
	userService     *services.UserService
	debateService   *services.DebateService
	argumentService *services.ArgumentService
)

// Init wires the controllers to their services. Called once at startup and
// from the handler tests.
func Init(store db.Store, judge services.Judge, logger zerolog.Logger) {
	userService = services.NewUserService(store, logger)
	debateService = services.NewDebateService(store, logger)
	argumentService = services.NewArgumentService(store, judge, logger)
}

// errorStatus maps a service failure to an HTTP status and error label.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAuthorNotFound),
		errors.Is(err, services.ErrOpponentNotFound),
		errors.Is(err, services.ErrDebateNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, services.ErrNotYourTurn):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrTurnConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, services.ErrInvalidParticipants):
		return http.StatusBadRequest, "Bad request"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
