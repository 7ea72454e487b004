package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edumynt/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Get retrieves the user's enrollment in a course
func (r *enrollmentRepository) Get(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrolled_at, completed_at, progress_percentage
		FROM user_enrollments
		WHERE user_id = ? AND course_id = ?
		LIMIT 1
	`

	var enrollment models.Enrollment
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.EnrolledAt,
		&completedAt,
		&enrollment.ProgressPercentage,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if completedAt.Valid {
		enrollment.CompletedAt = &completedAt.Time
	}

	return &enrollment, nil
}

// Create creates a new enrollment
//
// ID and EnrolledAt are filled in when empty. A second enrollment of the same user in the same
// course returns models.ErrAlreadyEnrolled.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.New().String()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}

	query := `
		INSERT INTO user_enrollments (id, user_id, course_id, enrolled_at, progress_percentage)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		enrollment.ID,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.EnrolledAt,
		enrollment.ProgressPercentage,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}

// UpdateProgress sets the progress percentage and completion time of an enrollment
func (r *enrollmentRepository) UpdateProgress(ctx context.Context, id string, percentage int, completedAt *time.Time) error {
	query := `
		UPDATE user_enrollments
		SET progress_percentage = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, percentage, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	// MySQL reports zero affected rows when values are unchanged, so only a missing row is an error
	if rowsAffected == 0 {
		var exists bool
		err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM user_enrollments WHERE id = ?)", id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check enrollment existence: %w", err)
		}
		if !exists {
			return models.ErrEnrollmentNotFound
		}
	}

	return nil
}

// GetByUserID retrieves all enrollments of a user with course details, newest first
func (r *enrollmentRepository) GetByUserID(ctx context.Context, userID string) ([]models.EnrollmentWithCourse, error) {
	query := `
		SELECT
			e.id,
			e.user_id,
			e.course_id,
			e.enrolled_at,
			e.completed_at,
			e.progress_percentage,
			c.title,
			c.subject,
			COALESCE(c.description, ''),
			COALESCE(c.thumbnail_url, '')
		FROM user_enrollments e
		INNER JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = ?
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []models.EnrollmentWithCourse{}
	for rows.Next() {
		var e models.EnrollmentWithCourse
		var completedAt sql.NullTime
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CourseID,
			&e.EnrolledAt,
			&completedAt,
			&e.ProgressPercentage,
			&e.CourseTitle,
			&e.CourseSubject,
			&e.CourseDescription,
			&e.ThumbnailURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		if completedAt.Valid {
			e.CompletedAt = &completedAt.Time
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return enrollments, nil
}
