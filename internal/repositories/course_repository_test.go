package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/edumynt/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCourseTestRepository creates a course repository with a mock database
func setupCourseTestRepository(t *testing.T) (*courseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCourseRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

var courseListColumns = []string{"id", "title", "description", "subject", "thumbnail_url", "is_free", "price", "lesson_count", "enrollment_count"}

func TestNewCourseRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCourseRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCourseRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		filter        models.CourseFilter
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		expectedCount int
	}{
		{
			name:   "success without filters",
			filter: models.CourseFilter{Page: 1, Count: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseListColumns).
					AddRow("c1", "Algebra", "Basics", "math", "", true, 0.0, 12, 40).
					AddRow("c2", "Physics", "", "science", "https://cdn/p.png", false, 19.99, 8, 3)
				mock.ExpectQuery(`SELECT .* FROM courses c WHERE c.status = \? ORDER BY c.created_at DESC LIMIT \? OFFSET \?`).
					WithArgs("published", 10, 0).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name:   "success with subject and search",
			filter: models.CourseFilter{Subject: "math", Search: "alg", Page: 3, Count: 5},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseListColumns).
					AddRow("c1", "Algebra", "Basics", "math", "", true, 0.0, 12, 40)
				mock.ExpectQuery(`SELECT .* FROM courses c WHERE c.status = \? AND c.subject = \? AND \(c.title LIKE \? OR c.description LIKE \?\)`).
					WithArgs("published", "math", "%alg%", "%alg%", 5, 10).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:   "empty result",
			filter: models.CourseFilter{Page: 1, Count: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses c`).
					WillReturnRows(sqlmock.NewRows(courseListColumns))
			},
			expectedCount: 0,
		},
		{
			name:   "database error",
			filter: models.CourseFilter{Page: 1, Count: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses c`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query courses",
		},
		{
			name:   "scan error",
			filter: models.CourseFilter{Page: 1, Count: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseListColumns).
					AddRow("c1", "Algebra", "Basics", "math", "", true, 0.0, "many", 40)
				mock.ExpectQuery(`SELECT .* FROM courses c`).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "failed to scan course",
		},
		{
			name:   "rows error",
			filter: models.CourseFilter{Page: 1, Count: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseListColumns).
					AddRow("c1", "Algebra", "Basics", "math", "", true, 0.0, 12, 40).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT .* FROM courses c`).
					WillReturnRows(rows)
			},
			expectedError: true,
			errorContains: "error iterating rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background(), tt.filter)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetAllMapsCounts(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows(courseListColumns).
		AddRow("c2", "Physics", "", "science", "https://cdn/p.png", false, 19.99, 8, 3)
	mock.ExpectQuery(`SELECT .* FROM courses c`).WillReturnRows(rows)

	result, err := repo.GetAll(context.Background(), models.CourseFilter{Page: 1, Count: 10})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, models.CourseListItem{
		ID:              "c2",
		Title:           "Physics",
		Subject:         "science",
		ThumbnailURL:    "https://cdn/p.png",
		Price:           19.99,
		LessonCount:     8,
		EnrollmentCount: 3,
	}, result[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetSubjects(t *testing.T) {
	tests := []struct {
		name             string
		setupMock        func(sqlmock.Sqlmock)
		expectedError    bool
		errorContains    string
		expectedSubjects []string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"subject"}).AddRow("math").AddRow("science")
				mock.ExpectQuery(`SELECT DISTINCT subject FROM courses WHERE status = \? ORDER BY subject`).
					WithArgs("published").
					WillReturnRows(rows)
			},
			expectedSubjects: []string{"math", "science"},
		},
		{
			name: "no subjects",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT DISTINCT subject FROM courses`).
					WillReturnRows(sqlmock.NewRows([]string{"subject"}))
			},
			expectedSubjects: []string{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT DISTINCT subject FROM courses`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to query subjects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetSubjects(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSubjects, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetByID(t *testing.T) {
	columns := []string{"id", "title", "description", "subject", "thumbnail_url", "status", "is_free", "price", "preview_enabled", "created_at", "updated_at"}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		errorContains string
	}{
		{
			name: "success",
			id:   "c1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("c1", "Algebra", "Basics", "math", "", "published", true, 0.0, true, now, now)
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \?`).
					WithArgs("c1").
					WillReturnRows(rows)
			},
		},
		{
			name: "course not found",
			id:   "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrCourseNotFound,
		},
		{
			name: "database error",
			id:   "c1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \?`).
					WithArgs("c1").
					WillReturnError(errors.New("database error"))
			},
			errorContains: "failed to get course by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

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
				assert.Equal(t, "c1", result.ID)
				assert.Equal(t, models.CourseStatusPublished, result.Status)
				assert.True(t, result.PreviewEnabled)
				assert.Equal(t, now, result.CreatedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
