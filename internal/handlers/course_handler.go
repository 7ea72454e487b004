package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/edumynt/backend/internal/models"
	authMiddleware "github.com/edumynt/backend/libs/auth/middleware"
	"github.com/edumynt/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for the course catalog
type CatalogService interface {
	// GetCourses retrieves a paginated list of published courses
	//
	// "ctx" is the context for the request.
	// "filter" holds the subject, search query, page and page size.
	//
	// Returns a list of courses and an error if any.
	GetCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error)
	// GetSubjects retrieves the distinct subjects of published courses
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of subjects and an error if any.
	GetSubjects(ctx context.Context) ([]string, error)
	// GetCourse retrieves the details of a course with its lessons for a user
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns the course details and an error if any.
	GetCourse(ctx context.Context, courseID, userID string) (*models.CourseDetailResponse, error)
	// Enroll enrolls a user in a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns the created enrollment and an error if any.
	Enroll(ctx context.Context, courseID, userID string) (*models.Enrollment, error)
}

// CourseHandler handles HTTP requests for the course catalog
type CourseHandler struct {
	handlers.BaseHandler
	service CatalogService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CatalogService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/courses", h.GetCourses)
		r.Get("/courses/subjects", h.GetSubjects)
		r.Get("/courses/{courseId}", h.GetCourse)
		r.Post("/courses/{courseId}/enroll", h.Enroll)
	})
}

// GetCourses handles GET /courses
// @Summary Get list of courses
// @Description Get a paginated list of published courses with optional filtering by subject and search
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string false "Filter by subject"
// @Param search query string false "Search by course title or description"
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 10, max: 100)"
// @Success 200 {array} models.CourseListItem "List of courses"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CourseFilter{
		Subject: query.Get("subject"),
		Search:  query.Get("search"),
	}

	// Unparseable pagination falls back to the defaults
	if p, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = p
	}
	if c, err := strconv.Atoi(query.Get("count")); err == nil {
		filter.Count = c
	}

	courses, err := h.service.GetCourses(r.Context(), filter)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetSubjects handles GET /courses/subjects
// @Summary Get course subjects
// @Description Get the distinct subjects of published courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} string "List of subjects"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/subjects [get]
func (h *CourseHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.GetSubjects(r.Context())
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get subjects")
		return
	}

	h.RespondJSON(w, http.StatusOK, subjects)
}

// GetCourse handles GET /courses/{courseId}
// @Summary Get course details
// @Description Get course details with lessons, lock and completion status, and the user's enrollment
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.CourseDetailResponse "Course with lessons"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID := chi.URLParam(r, "courseId")

	course, err := h.service.GetCourse(r.Context(), courseID, userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// Enroll handles POST /courses/{courseId}/enroll
// @Summary Enroll in course
// @Description Enroll the user in a published course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course ID"
// @Success 201 {object} models.Enrollment "Created enrollment"
// @Failure 400 {object} map[string]string "Course is not published"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/enroll [post]
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	// Extract userID from context
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	courseID := chi.URLParam(r, "courseId")

	enrollment, err := h.service.Enroll(r.Context(), courseID, userID)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to enroll in course")
		return
	}

	h.Logger.Info("user enrolled", zap.String("user_id", userID), zap.String("course_id", courseID))
	h.RespondJSON(w, http.StatusCreated, enrollment)
}
