package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edumynt/backend/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetAll retrieves published courses with filtering and pagination
	//
	// "ctx" is the context for the request.
	// "filter" holds the subject, search query, page and page size.
	//
	// Returns a list of courses and an error if any.
	GetAll(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error)
	// GetSubjects retrieves the distinct subjects of published courses
	//
	// "ctx" is the context for the request.
	//
	// Returns a list of subjects and an error if any.
	GetSubjects(ctx context.Context) ([]string, error)
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, id string) (*models.Course, error)
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson with its raw content by ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson and an error if any.
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// GetByCourseID retrieves the ordered lessons of a course with completion status
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns a list of lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID, userID string) ([]models.LessonListItem, error)
	// CountByCourseID counts the lessons of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the number of lessons and an error if any.
	CountByCourseID(ctx context.Context, courseID string) (int, error)
	// GetFirstIncomplete retrieves the first lesson of a course the user has not completed
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns the lesson, nil when all are completed, and an error if any.
	GetFirstIncomplete(ctx context.Context, courseID, userID string) (*models.LessonNavItem, error)
}

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Get retrieves the user's enrollment in a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the enrollment and an error if any.
	Get(ctx context.Context, userID, courseID string) (*models.Enrollment, error)
	// Create creates a new enrollment
	//
	// "ctx" is the context for the request.
	// "enrollment" is the enrollment to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// UpdateProgress sets the progress percentage and completion time of an enrollment
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the enrollment.
	// "percentage" is the new progress percentage.
	// "completedAt" is the completion time, nil while the course is not completed.
	//
	// Returns an error if any.
	UpdateProgress(ctx context.Context, id string, percentage int, completedAt *time.Time) error
	// GetByUserID retrieves all enrollments of a user with course details
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns a list of enrollments and an error if any.
	GetByUserID(ctx context.Context, userID string) ([]models.EnrollmentWithCourse, error)
}

type catalogService struct {
	courseRepo     CourseRepository
	lessonRepo     LessonRepository
	enrollmentRepo EnrollmentRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	enrollmentRepo EnrollmentRepository,
) *catalogService {
	return &catalogService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetCourses retrieves published courses with filtering and pagination
func (s *catalogService) GetCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Count < 1 {
		filter.Count = defaultPageSize
	}
	if filter.Count > maxPageSize {
		filter.Count = maxPageSize
	}

	courses, err := s.courseRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// GetSubjects retrieves the distinct subjects of published courses
func (s *catalogService) GetSubjects(ctx context.Context) ([]string, error) {
	subjects, err := s.courseRepo.GetSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get subjects: %w", err)
	}
	return subjects, nil
}

// GetCourse retrieves a published course with its lessons and the user's enrollment
func (s *catalogService) GetCourse(ctx context.Context, courseID, userID string) (*models.CourseDetailResponse, error) {
	course, err := getPublishedCourse(ctx, s.courseRepo, courseID)
	if err != nil {
		return nil, err
	}

	enrollment, err := findEnrollment(ctx, s.enrollmentRepo, userID, courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	totalDuration := 0
	for i := range lessons {
		lessons[i].Locked = !canAccess(course, lessons[i].IsPreview, enrollment != nil)
		totalDuration += lessons[i].EstimatedDuration
	}

	return &models.CourseDetailResponse{
		Course:        course,
		Lessons:       lessons,
		Enrollment:    enrollment,
		TotalDuration: totalDuration,
	}, nil
}

// Enroll enrolls the user in a published course
func (s *catalogService) Enroll(ctx context.Context, courseID, userID string) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.Status != models.CourseStatusPublished {
		return nil, models.ErrCourseNotPublished
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	return enrollment, nil
}

// getPublishedCourse retrieves a course, treating unpublished courses as missing
func getPublishedCourse(ctx context.Context, repo CourseRepository, courseID string) (*models.Course, error) {
	course, err := repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.Status != models.CourseStatusPublished {
		return nil, models.ErrCourseNotFound
	}
	return course, nil
}

// findEnrollment retrieves the user's enrollment, returning nil when the user is not enrolled
func findEnrollment(ctx context.Context, repo EnrollmentRepository, userID, courseID string) (*models.Enrollment, error) {
	enrollment, err := repo.Get(ctx, userID, courseID)
	if errors.Is(err, models.ErrEnrollmentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return enrollment, nil
}

// canAccess reports whether a lesson is open to the user
func canAccess(course *models.Course, isPreview bool, enrolled bool) bool {
	return isPreview || course.PreviewEnabled || enrolled
}
