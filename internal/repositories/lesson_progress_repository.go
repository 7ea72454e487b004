package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/edumynt/backend/internal/models"
	"github.com/google/uuid"
)

type lessonProgressRepository struct {
	db *sql.DB
}

// NewLessonProgressRepository creates a new lesson progress repository
func NewLessonProgressRepository(db *sql.DB) *lessonProgressRepository {
	return &lessonProgressRepository{
		db: db,
	}
}

// MarkCompleted upserts a completed progress record for the user and lesson
//
// Time spent accumulates across repeated completions; the first completion time is kept.
func (r *lessonProgressRepository) MarkCompleted(ctx context.Context, progress *models.LessonProgress) error {
	if progress.ID == "" {
		progress.ID = uuid.New().String()
	}
	if progress.CompletedAt == nil {
		now := time.Now().UTC()
		progress.CompletedAt = &now
	}
	progress.Completed = true

	query := `
		INSERT INTO lesson_progress (id, user_id, lesson_id, completed, completed_at, time_spent, last_position)
		VALUES (?, ?, ?, TRUE, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			completed = TRUE,
			completed_at = COALESCE(completed_at, VALUES(completed_at)),
			time_spent = time_spent + VALUES(time_spent),
			last_position = VALUES(last_position)
	`

	_, err := r.db.ExecContext(ctx, query,
		progress.ID,
		progress.UserID,
		progress.LessonID,
		progress.CompletedAt,
		progress.TimeSpent,
		progress.LastPosition,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lesson progress: %w", err)
	}

	return nil
}

// CountCompletedByCourse counts the lessons of a course the user has completed
func (r *lessonProgressRepository) CountCompletedByCourse(ctx context.Context, userID, courseID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM lesson_progress lp
		INNER JOIN lessons l ON l.id = lp.lesson_id
		WHERE lp.user_id = ? AND l.course_id = ? AND lp.completed = TRUE
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed lessons: %w", err)
	}
	return count, nil
}

// GetTotals aggregates completed lessons and time spent for the user
func (r *lessonProgressRepository) GetTotals(ctx context.Context, userID string) (*models.ProgressTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(time_spent), 0)
		FROM lesson_progress
		WHERE user_id = ?
	`

	var totals models.ProgressTotals
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&totals.CompletedLessons, &totals.TimeSpent)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress totals: %w", err)
	}
	return &totals, nil
}
