package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edumynt/backend/internal/models"
	"github.com/edumynt/backend/libs/handlers"
	"go.uber.org/zap"
)

// errorStatuses maps domain errors to the HTTP status they are reported with
var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrCourseNotFound, http.StatusNotFound},
	{models.ErrLessonNotFound, http.StatusNotFound},
	{models.ErrBlockNotFound, http.StatusNotFound},
	{models.ErrLessonLocked, http.StatusForbidden},
	{models.ErrNotEnrolled, http.StatusForbidden},
	{models.ErrAlreadyEnrolled, http.StatusConflict},
	{models.ErrInvalidOption, http.StatusBadRequest},
	{models.ErrCourseNotPublished, http.StatusBadRequest},
	{models.ErrInvalidQuestion, http.StatusUnprocessableEntity},
}

// errorStatus returns the HTTP status and client message for a service error
func errorStatus(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, ""
}

// respondServiceError logs a failed service call and sends the mapped error response.
// Unmapped errors are reported as 500 with message as the body.
func respondServiceError(h *handlers.BaseHandler, w http.ResponseWriter, err error, message string) {
	status, clientMessage := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(message, zap.Error(err))
		h.RespondError(w, status, message)
		return
	}

	h.Logger.Warn(message, zap.Error(err), zap.Int("status", status))
	h.RespondError(w, status, clientMessage)
}

// parseSelection reads the question answer posted by a lesson page form
func parseSelection(r *http.Request) (*models.Selection, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid form data")
	}

	blockID := r.PostForm.Get("block")
	if blockID == "" {
		return nil, errors.New("block is required")
	}
	option, err := strconv.Atoi(r.PostForm.Get("option"))
	if err != nil {
		return nil, errors.New("option must be a number")
	}

	return &models.Selection{BlockID: blockID, Option: option}, nil
}

// decodeAnswer reads the selected option of an answer request
func decodeAnswer(h *handlers.BaseHandler, r *http.Request) (int, error) {
	var req models.AnswerRequest
	if err := h.DecodeJSON(r, &req, false); err != nil {
		return 0, err
	}
	if req.Option == nil {
		return 0, errors.New("option is required")
	}
	return *req.Option, nil
}
