package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/edumynt/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAll retrieves published courses with filtering and pagination, newest first
func (r *courseRepository) GetAll(ctx context.Context, filter models.CourseFilter) ([]models.CourseListItem, error) {
	whereClauses := []string{"c.status = ?"}
	args := []any{models.CourseStatusPublished}

	if filter.Subject != "" {
		whereClauses = append(whereClauses, "c.subject = ?")
		args = append(args, filter.Subject)
	}

	if filter.Search != "" {
		whereClauses = append(whereClauses, "(c.title LIKE ? OR c.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	// Calculate offset
	offset := (filter.Page - 1) * filter.Count

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.title,
			COALESCE(c.description, ''),
			c.subject,
			COALESCE(c.thumbnail_url, ''),
			c.is_free,
			c.price,
			(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS lesson_count,
			(SELECT COUNT(*) FROM user_enrollments e WHERE e.course_id = c.id) AS enrollment_count
		FROM courses c
		WHERE %s
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?
	`, strings.Join(whereClauses, " AND "))

	args = append(args, filter.Count, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseListItem{}
	for rows.Next() {
		var course models.CourseListItem
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Subject,
			&course.ThumbnailURL,
			&course.IsFree,
			&course.Price,
			&course.LessonCount,
			&course.EnrollmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetSubjects retrieves the distinct subjects of published courses
func (r *courseRepository) GetSubjects(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT subject
		FROM courses
		WHERE status = ?
		ORDER BY subject
	`

	rows, err := r.db.QueryContext(ctx, query, models.CourseStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []string{}
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return subjects, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), subject, COALESCE(thumbnail_url, ''),
			status, is_free, price, preview_enabled, created_at, updated_at
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Subject,
		&course.ThumbnailURL,
		&course.Status,
		&course.IsFree,
		&course.Price,
		&course.PreviewEnabled,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}
