package models

import "time"

// CourseStatus represents the publication status of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Course represents a course in the catalog
type Course struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Subject        string       `json:"subject"`
	ThumbnailURL   string       `json:"thumbnailUrl,omitempty"`
	Status         CourseStatus `json:"status"`
	IsFree         bool         `json:"isFree"`
	Price          float64      `json:"price"`
	PreviewEnabled bool         `json:"previewEnabled"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// CourseListItem represents a course in catalog list responses
type CourseListItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	Subject         string  `json:"subject"`
	ThumbnailURL    string  `json:"thumbnailUrl,omitempty"`
	IsFree          bool    `json:"isFree"`
	Price           float64 `json:"price"`
	LessonCount     int     `json:"lessonCount"`
	EnrollmentCount int     `json:"enrollmentCount"`
}

// CourseFilter holds catalog filtering and pagination parameters
type CourseFilter struct {
	Subject string
	Search  string
	Page    int
	Count   int
}

// CourseDetailResponse represents a course with its lessons for the current user
type CourseDetailResponse struct {
	Course     *Course          `json:"course"`
	Lessons    []LessonListItem `json:"lessons"`
	Enrollment *Enrollment      `json:"enrollment,omitempty"`

	// TotalDuration is the sum of lesson durations in minutes
	TotalDuration int `json:"totalDuration"`
}
