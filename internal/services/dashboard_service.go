package services

import (
	"context"
	"fmt"

	"github.com/edumynt/backend/internal/models"
)

type dashboardService struct {
	lessonRepo     LessonRepository
	enrollmentRepo EnrollmentRepository
	progressRepo   LessonProgressRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	lessonRepo LessonRepository,
	enrollmentRepo EnrollmentRepository,
	progressRepo LessonProgressRepository,
) *dashboardService {
	return &dashboardService{
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
	}
}

// GetDashboard retrieves the user's enrolled courses, where to continue in each, and summary stats
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	enrollments, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}

	totals, err := s.progressRepo.GetTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress totals: %w", err)
	}

	response := &models.DashboardResponse{
		Stats: models.DashboardStats{
			CoursesEnrolled:  len(enrollments),
			LessonsCompleted: totals.CompletedLessons,
			TimeSpent:        totals.TimeSpent,
		},
		Courses: make([]models.DashboardCourse, 0, len(enrollments)),
	}

	for _, enrollment := range enrollments {
		if enrollment.CompletedAt != nil {
			response.Stats.CoursesCompleted++
		}

		next, err := s.lessonRepo.GetFirstIncomplete(ctx, enrollment.CourseID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get next lesson: %w", err)
		}

		response.Courses = append(response.Courses, models.DashboardCourse{
			EnrollmentWithCourse: enrollment,
			ContinueLesson:       next,
		})
	}

	return response, nil
}
