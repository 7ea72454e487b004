package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/edumynt/backend/internal/models"
	authMiddleware "github.com/edumynt/backend/libs/auth/middleware"
	"github.com/edumynt/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for learner lesson operations
type LessonService interface {
	// GetLesson retrieves a rendered lesson with navigation and completion status
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course the lesson belongs to.
	// "lessonID" is the ID of the lesson.
	// "userID" is the ID of the user.
	//
	// Returns the rendered lesson and an error if any.
	GetLesson(ctx context.Context, courseID, lessonID, userID string) (*models.LessonResponse, error)
	// GetLessonPage prepares a lesson as a page
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course the lesson belongs to.
	// "lessonID" is the ID of the lesson.
	// "userID" is the ID of the user.
	// "selection" is the answered question, nil when nothing was answered.
	//
	// Returns the page and an error if any.
	GetLessonPage(ctx context.Context, courseID, lessonID, userID string, selection *models.Selection) (*models.LessonPage, error)
	// WritePage writes a prepared page as an HTML document
	WritePage(w io.Writer, page *models.LessonPage) error
	// CompleteLesson marks a lesson as completed and updates course progress
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	// "userID" is the ID of the user.
	// "timeSpent" is the time spent on the lesson in seconds.
	//
	// Returns an error if any.
	CompleteLesson(ctx context.Context, lessonID, userID string, timeSpent int) error
	// AnswerQuestion selects an option of a question block
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	// "blockID" is the ID of the question block.
	// "userID" is the ID of the user.
	// "option" is the index of the selected option.
	//
	// Returns the verdict with the answered fragment and an error if any.
	AnswerQuestion(ctx context.Context, lessonID, blockID, userID string, option int) (*models.AnswerResponse, error)
}

// LessonHandler handles HTTP requests for learner lesson operations
type LessonHandler struct {
	handlers.BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/courses/{courseId}/lessons/{lessonId}", h.GetLesson)
		r.Get("/courses/{courseId}/lessons/{lessonId}/page", h.GetLessonPage)
		r.Post("/courses/{courseId}/lessons/{lessonId}/page", h.GetLessonPage)
	})
	r.Route("/lessons", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/{lessonId}/complete", h.CompleteLesson)
		r.Post("/{lessonId}/blocks/{blockId}/answer", h.AnswerQuestion)
	})
}

// GetLesson handles GET /courses/{courseId}/lessons/{lessonId}
// @Summary Get lesson
// @Description Get a lesson with one rendered fragment per block, navigation and completion status
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonResponse "Rendered lesson"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Lesson is locked"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	lesson, err := h.service.GetLesson(r.Context(), courseID, lessonID, userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// GetLessonPage handles GET and POST /courses/{courseId}/lessons/{lessonId}/page
// @Summary Get lesson page
// @Description Get a lesson as an HTML document. Posting a question form answers that question.
// @Tags lessons
// @Accept x-www-form-urlencoded
// @Produce html
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param block formData string false "Question block ID (POST only)"
// @Param option formData int false "Selected option index (POST only)"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Lesson is locked"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/page [get]
// @Router /courses/{courseId}/lessons/{lessonId}/page [post]
func (h *LessonHandler) GetLessonPage(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var selection *models.Selection
	if r.Method == http.MethodPost {
		var err error
		selection, err = parseSelection(r)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	courseID := chi.URLParam(r, "courseId")
	lessonID := chi.URLParam(r, "lessonId")

	page, err := h.service.GetLessonPage(r.Context(), courseID, lessonID, userID, selection)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get lesson page")
		return
	}

	h.RespondHTML(w, http.StatusOK, func(w io.Writer) error {
		return h.service.WritePage(w, page)
	})
}

// CompleteLesson handles POST /lessons/{lessonId}/complete
// @Summary Complete lesson
// @Description Mark a lesson as completed and update the course progress
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "Lesson ID"
// @Param request body models.CompleteLessonRequest false "Time spent on the lesson"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not enrolled in course"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{lessonId}/complete [post]
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	lessonID := chi.URLParam(r, "lessonId")

	var req models.CompleteLessonRequest
	if err := h.DecodeJSON(r, &req, true); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.CompleteLesson(r.Context(), lessonID, userID, req.TimeSpent); err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to complete lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AnswerQuestion handles POST /lessons/{lessonId}/blocks/{blockId}/answer
// @Summary Answer question
// @Description Select an option of a lesson question and get the verdict with the answered fragment
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "Lesson ID"
// @Param blockId path string true "Question block ID"
// @Param request body models.AnswerRequest true "Selected option"
// @Success 200 {object} models.AnswerResponse "Verdict and answered fragment"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Lesson is locked"
// @Failure 404 {object} map[string]string "Lesson or block not found"
// @Failure 422 {object} map[string]string "Question data is invalid"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{lessonId}/blocks/{blockId}/answer [post]
func (h *LessonHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	lessonID := chi.URLParam(r, "lessonId")
	blockID := chi.URLParam(r, "blockId")

	option, err := decodeAnswer(&h.BaseHandler, r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.service.AnswerQuestion(r.Context(), lessonID, blockID, userID, option)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to answer question")
		return
	}

	h.RespondJSON(w, http.StatusOK, answer)
}
