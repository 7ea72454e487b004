package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edumynt/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson with its raw content by ID
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, content, COALESCE(video_url, ''), lesson_type,
			order_index, is_preview, estimated_duration, created_at, updated_at
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	var content []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&content,
		&lesson.VideoURL,
		&lesson.LessonType,
		&lesson.OrderIndex,
		&lesson.IsPreview,
		&lesson.EstimatedDuration,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	// NULL content stays nil
	lesson.Content = content

	return &lesson, nil
}

// GetByCourseID retrieves the lessons of a course in order, with completion for the user
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID, userID string) ([]models.LessonListItem, error) {
	query := `
		SELECT
			l.id,
			l.title,
			l.lesson_type,
			l.order_index,
			l.is_preview,
			l.estimated_duration,
			COALESCE(lp.completed, FALSE) AS completed
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id AND lp.user_id = ?
		WHERE l.course_id = ?
		ORDER BY l.order_index, l.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.LessonListItem{}
	for rows.Next() {
		var lesson models.LessonListItem
		err := rows.Scan(
			&lesson.ID,
			&lesson.Title,
			&lesson.LessonType,
			&lesson.OrderIndex,
			&lesson.IsPreview,
			&lesson.EstimatedDuration,
			&lesson.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// CountByCourseID counts the lessons in a course
func (r *lessonRepository) CountByCourseID(ctx context.Context, courseID string) (int, error) {
	query := "SELECT COUNT(*) FROM lessons WHERE course_id = ?"

	var count int
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}
	return count, nil
}

// GetFirstIncomplete retrieves the first lesson of a course the user has not completed
//
// Returns nil without an error when every lesson is completed.
func (r *lessonRepository) GetFirstIncomplete(ctx context.Context, courseID, userID string) (*models.LessonNavItem, error) {
	query := `
		SELECT l.id, l.title
		FROM lessons l
		LEFT JOIN lesson_progress lp ON lp.lesson_id = l.id AND lp.user_id = ?
		WHERE l.course_id = ? AND COALESCE(lp.completed, FALSE) = FALSE
		ORDER BY l.order_index, l.id
		LIMIT 1
	`

	var item models.LessonNavItem
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&item.ID, &item.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first incomplete lesson: %w", err)
	}

	return &item, nil
}
