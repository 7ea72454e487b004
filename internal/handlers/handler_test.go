package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/edumynt/backend/internal/models"
	authMiddleware "github.com/edumynt/backend/libs/auth/middleware"
	"github.com/go-chi/chi/v5"
)

const testUserID = "user-1"

// fakeAuth authenticates every request as testUserID
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(authMiddleware.WithUserID(r.Context(), testUserID)))
	})
}

// noUserAuth passes requests through without a user ID
func noUserAuth(next http.Handler) http.Handler {
	return next
}

type authRoutes interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

// setupTestRouter mounts a handler under /api/v1 like the server does
func setupTestRouter(h authRoutes, auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		h.RegisterRoutes(r, auth)
	})
	return r
}

// mockCatalogService is a mock implementation of CatalogService
type mockCatalogService struct {
	courses    []models.CourseListItem
	subjects   []string
	detail     *models.CourseDetailResponse
	enrollment *models.Enrollment
	err        error

	lastFilter   models.CourseFilter
	lastCourseID string
	lastUserID   string
}

func (m *mockCatalogService) GetCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error) {
	m.lastFilter = filter
	return m.courses, m.err
}

func (m *mockCatalogService) GetSubjects(ctx context.Context) ([]string, error) {
	return m.subjects, m.err
}

func (m *mockCatalogService) GetCourse(ctx context.Context, courseID, userID string) (*models.CourseDetailResponse, error) {
	m.lastCourseID = courseID
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func (m *mockCatalogService) Enroll(ctx context.Context, courseID, userID string) (*models.Enrollment, error) {
	m.lastCourseID = courseID
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.enrollment, nil
}

// mockLessonService is a mock implementation of LessonService
type mockLessonService struct {
	lesson *models.LessonResponse
	page   *models.LessonPage
	answer *models.AnswerResponse
	err    error

	lastCourseID  string
	lastLessonID  string
	lastBlockID   string
	lastUserID    string
	lastOption    int
	lastTimeSpent int
	lastSelection *models.Selection
	completed     bool
}

func (m *mockLessonService) GetLesson(ctx context.Context, courseID, lessonID, userID string) (*models.LessonResponse, error) {
	m.lastCourseID, m.lastLessonID, m.lastUserID = courseID, lessonID, userID
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockLessonService) GetLessonPage(ctx context.Context, courseID, lessonID, userID string, selection *models.Selection) (*models.LessonPage, error) {
	m.lastCourseID, m.lastLessonID, m.lastUserID = courseID, lessonID, userID
	m.lastSelection = selection
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockLessonService) WritePage(w io.Writer, page *models.LessonPage) error {
	return writeTestPage(w, page)
}

func (m *mockLessonService) CompleteLesson(ctx context.Context, lessonID, userID string, timeSpent int) error {
	m.lastLessonID, m.lastUserID, m.lastTimeSpent = lessonID, userID, timeSpent
	if m.err != nil {
		return m.err
	}
	m.completed = true
	return nil
}

func (m *mockLessonService) AnswerQuestion(ctx context.Context, lessonID, blockID, userID string, option int) (*models.AnswerResponse, error) {
	m.lastLessonID, m.lastBlockID, m.lastUserID, m.lastOption = lessonID, blockID, userID, option
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// mockDemoService is a mock implementation of DemoService
type mockDemoService struct {
	lesson *models.LessonResponse
	page   *models.LessonPage
	answer *models.AnswerResponse
	err    error

	lastBlockID   string
	lastOption    int
	lastSelection *models.Selection
}

func (m *mockDemoService) GetDemoLesson(ctx context.Context) *models.LessonResponse {
	return m.lesson
}

func (m *mockDemoService) GetDemoPage(ctx context.Context, selection *models.Selection) (*models.LessonPage, error) {
	m.lastSelection = selection
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockDemoService) AnswerDemoQuestion(ctx context.Context, blockID string, option int) (*models.AnswerResponse, error) {
	m.lastBlockID, m.lastOption = blockID, option
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockDemoService) WritePage(w io.Writer, page *models.LessonPage) error {
	return writeTestPage(w, page)
}

// mockDashboardService is a mock implementation of DashboardService
type mockDashboardService struct {
	dashboard  *models.DashboardResponse
	err        error
	lastUserID string
}

func (m *mockDashboardService) GetDashboard(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	m.lastUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.dashboard, nil
}

func writeTestPage(w io.Writer, page *models.LessonPage) error {
	_, err := fmt.Fprintf(w, "<title>%s</title>", page.Title)
	for _, f := range page.Fragments {
		fmt.Fprint(w, f.HTML)
	}
	return err
}
