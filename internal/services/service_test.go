package services

import (
	"context"
	"time"

	"github.com/edumynt/backend/internal/models"
)

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses     []models.CourseListItem
	subjects    []string
	course      *models.Course
	err         error
	getByIDErr  error
	lastFilter  models.CourseFilter
	getAllCalls int
}

func (m *mockCourseRepository) GetAll(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error) {
	m.getAllCalls++
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) GetSubjects(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subjects, nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	if m.course == nil || m.course.ID != id {
		return nil, models.ErrCourseNotFound
	}
	c := *m.course
	return &c, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lesson     *models.Lesson
	lessons    []models.LessonListItem
	count      int
	next       map[string]*models.LessonNavItem
	getByIDErr error
	listErr    error
	countErr   error
	nextErr    error
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	if m.lesson == nil || m.lesson.ID != id {
		return nil, models.ErrLessonNotFound
	}
	l := *m.lesson
	return &l, nil
}

func (m *mockLessonRepository) GetByCourseID(ctx context.Context, courseID, userID string) ([]models.LessonListItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.LessonListItem, len(m.lessons))
	copy(out, m.lessons)
	return out, nil
}

func (m *mockLessonRepository) CountByCourseID(ctx context.Context, courseID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockLessonRepository) GetFirstIncomplete(ctx context.Context, courseID, userID string) (*models.LessonNavItem, error) {
	if m.nextErr != nil {
		return nil, m.nextErr
	}
	return m.next[courseID], nil
}

// mockEnrollmentRepository is a mock implementation of EnrollmentRepository
type mockEnrollmentRepository struct {
	enrollment   *models.Enrollment
	enrollments  []models.EnrollmentWithCourse
	getErr       error
	createErr    error
	updateErr    error
	listErr      error
	getCalled    bool
	created      *models.Enrollment
	updateCalled bool
	updatedID    string
	updatedPct   int
	updatedAt    *time.Time
}

func (m *mockEnrollmentRepository) Get(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.enrollment == nil {
		return nil, models.ErrEnrollmentNotFound
	}
	e := *m.enrollment
	return &e, nil
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	enrollment.ID = "enrollment-1"
	enrollment.EnrolledAt = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	m.created = enrollment
	return nil
}

func (m *mockEnrollmentRepository) UpdateProgress(ctx context.Context, id string, percentage int, completedAt *time.Time) error {
	m.updateCalled = true
	m.updatedID = id
	m.updatedPct = percentage
	m.updatedAt = completedAt
	return m.updateErr
}

func (m *mockEnrollmentRepository) GetByUserID(ctx context.Context, userID string) ([]models.EnrollmentWithCourse, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.enrollments, nil
}

// mockLessonProgressRepository is a mock implementation of LessonProgressRepository
type mockLessonProgressRepository struct {
	completed int
	totals    *models.ProgressTotals
	markErr   error
	countErr  error
	totalsErr error
	marked    *models.LessonProgress
}

func (m *mockLessonProgressRepository) MarkCompleted(ctx context.Context, progress *models.LessonProgress) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.marked = progress
	return nil
}

func (m *mockLessonProgressRepository) CountCompletedByCourse(ctx context.Context, userID, courseID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.completed, nil
}

func (m *mockLessonProgressRepository) GetTotals(ctx context.Context, userID string) (*models.ProgressTotals, error) {
	if m.totalsErr != nil {
		return nil, m.totalsErr
	}
	if m.totals == nil {
		return &models.ProgressTotals{}, nil
	}
	return m.totals, nil
}

// mockRenderCache is an in-memory RenderCache
type mockRenderCache struct {
	entries map[string][]models.Fragment
	gets    int
	sets    int
}

func newMockRenderCache() *mockRenderCache {
	return &mockRenderCache{entries: map[string][]models.Fragment{}}
}

func (m *mockRenderCache) Get(ctx context.Context, lessonID string, content []byte) ([]models.Fragment, bool) {
	m.gets++
	f, ok := m.entries[lessonID+string(content)]
	return f, ok
}

func (m *mockRenderCache) Set(ctx context.Context, lessonID string, content []byte, fragments []models.Fragment) {
	m.sets++
	m.entries[lessonID+string(content)] = fragments
}

// publishedCourse returns a published course without preview
func publishedCourse() *models.Course {
	return &models.Course{ID: "course-1", Title: "Algebra", Subject: "math", Status: models.CourseStatusPublished}
}
