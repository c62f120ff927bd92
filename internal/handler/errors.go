package handler

import (
	"errors"
	"net/http"

	apperrors "fyyur/pkg/app_errors"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// classify maps an error to its status and user-facing message. Unexpected errors are 500.
func classify(err error) (int, string) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, apperrors.ErrInvalidShowReference):
		return http.StatusBadRequest, "Show must reference an existing venue and artist"
	case errors.Is(err, apperrors.ErrVenueNotFound):
		return http.StatusNotFound, "Venue not found"
	case errors.Is(err, apperrors.ErrArtistNotFound):
		return http.StatusNotFound, "Artist not found"
	case errors.Is(err, apperrors.ErrDuplicateName):
		return http.StatusConflict, "Name already listed"
	case errors.Is(err, apperrors.ErrHasShows):
		return http.StatusConflict, "Listing still has shows"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func errorBody(err error, message string) gin.H {
	body := gin.H{"error": message}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	return body
}

func logError(err error, operation string, status int) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	if status >= http.StatusInternalServerError {
		var serr *apperrors.StoreError
		if errors.As(err, &serr) {
			log = log.With(zap.String("store_op", serr.Op))
		}
		log.Error("Unexpected error")
		return
	}
	log.Warn("Request failed")
}

// handleError renders the error page or a JSON error body.
func (p *page) handleError(c *gin.Context, err error, operation string) {
	status, message := classify(err)
	logError(err, operation, status)
	_ = c.Error(err)

	p.render(c, status, "error.html", gin.H{
		"title":  http.StatusText(status),
		"status": status,
		"error":  message,
	}, errorBody(err, message))
}

// handleFormError re-renders a form page with the error, keeping what the user typed.
func (p *page) handleFormError(c *gin.Context, err error, operation, name string, htmlData gin.H) {
	status, message := classify(err)
	logError(err, operation, status)
	_ = c.Error(err)

	htmlData["error"] = message
	p.render(c, status, name, htmlData, errorBody(err, message))
}
