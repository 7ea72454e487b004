package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/edumynt/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnrollmentTestRepository creates an enrollment repository with a mock database
func setupEnrollmentTestRepository(t *testing.T) (*enrollmentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEnrollmentRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewEnrollmentRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewEnrollmentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestEnrollmentRepository_Get(t *testing.T) {
	columns := []string{"id", "user_id", "course_id", "enrolled_at", "completed_at", "progress_percentage"}
	enrolledAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	completedAt := enrolledAt.Add(48 * time.Hour)

	tests := []struct {
		name              string
		setupMock         func(sqlmock.Sqlmock)
		expectedError     error
		errorContains     string
		expectedCompleted *time.Time
	}{
		{
			name: "in progress",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("e1", "user-1", "c1", enrolledAt, nil, 40)
				mock.ExpectQuery(`SELECT .* FROM user_enrollments WHERE user_id = \? AND course_id = \?`).
					WithArgs("user-1", "c1").
					WillReturnRows(rows)
			},
		},
		{
			name: "completed",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("e1", "user-1", "c1", enrolledAt, completedAt, 100)
				mock.ExpectQuery(`SELECT .* FROM user_enrollments WHERE user_id = \? AND course_id = \?`).
					WithArgs("user-1", "c1").
					WillReturnRows(rows)
			},
			expectedCompleted: &completedAt,
		},
		{
			name: "not enrolled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM user_enrollments`).
					WithArgs("user-1", "c1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrEnrollmentNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM user_enrollments`).
					WillReturnError(errors.New("database error"))
			},
			errorContains: "failed to get enrollment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.Get(context.Background(), "user-1", "c1")

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.errorContains != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, "e1", result.ID)
				assert.Equal(t, enrolledAt, result.EnrolledAt)
				assert.Equal(t, tt.expectedCompleted, result.CompletedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_enrollments \(id, user_id, course_id, enrolled_at, progress_percentage\)`).
					WithArgs(sqlmock.AnyArg(), "user-1", "c1", sqlmock.AnyArg(), 0).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate enrollment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_enrollments`).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'user-1-c1'"})
			},
			expectedError: models.ErrAlreadyEnrolled,
		},
		{
			name: "other mysql error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_enrollments`).
					WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
			},
			errorContains: "failed to create enrollment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			enrollment := &models.Enrollment{UserID: "user-1", CourseID: "c1"}
			err := repo.Create(context.Background(), enrollment)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.errorContains != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				require.NoError(t, err)
				_, parseErr := uuid.Parse(enrollment.ID)
				assert.NoError(t, parseErr)
				assert.False(t, enrollment.EnrolledAt.IsZero())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_UpdateProgress(t *testing.T) {
	completedAt := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		percentage    int
		completedAt   *time.Time
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		errorContains string
	}{
		{
			name:       "in progress",
			percentage: 50,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE user_enrollments SET progress_percentage = \?, completed_at = \? WHERE id = \?`).
					WithArgs(50, nil, "e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:        "completed",
			percentage:  100,
			completedAt: &completedAt,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE user_enrollments`).
					WithArgs(100, completedAt, "e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:       "unchanged row",
			percentage: 50,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE user_enrollments`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name:       "missing row",
			percentage: 50,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE user_enrollments`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("e1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedError: models.ErrEnrollmentNotFound,
		},
		{
			name:       "database error",
			percentage: 50,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE user_enrollments`).
					WillReturnError(errors.New("database error"))
			},
			errorContains: "failed to update enrollment progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateProgress(context.Background(), "e1", tt.percentage, tt.completedAt)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.errorContains != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_GetByUserID(t *testing.T) {
	columns := []string{"id", "user_id", "course_id", "enrolled_at", "completed_at", "progress_percentage", "title", "subject", "description", "thumbnail_url"}
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("e2", "user-1", "c2", now, now, 100, "Physics", "science", "", "").
					AddRow("e1", "user-1", "c1", now.Add(-time.Hour), nil, 25, "Algebra", "math", "Basics", "")
				mock.ExpectQuery(`SELECT .* FROM user_enrollments e INNER JOIN courses c ON c.id = e.course_id WHERE e.user_id = \? ORDER BY e.enrolled_at DESC`).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "no enrollments",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM user_enrollments e`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM user_enrollments e`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query enrollments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByUserID(context.Background(), "user-1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
				if tt.expectedCount == 2 {
					assert.Equal(t, "Physics", result[0].CourseTitle)
					assert.NotNil(t, result[0].CompletedAt)
					assert.Nil(t, result[1].CompletedAt)
					assert.Equal(t, 25, result[1].ProgressPercentage)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
