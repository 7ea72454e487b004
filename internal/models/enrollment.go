package models

import "time"

// Enrollment represents a user's enrollment in a course
type Enrollment struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	CourseID           string     `json:"courseId"`
	EnrolledAt         time.Time  `json:"enrolledAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	ProgressPercentage int        `json:"progressPercentage"`
}

// EnrollmentWithCourse represents an enrollment joined with its course
type EnrollmentWithCourse struct {
	Enrollment
	CourseTitle       string `json:"courseTitle"`
	CourseSubject     string `json:"courseSubject"`
	CourseDescription string `json:"courseDescription,omitempty"`
	ThumbnailURL      string `json:"thumbnailUrl,omitempty"`
}
