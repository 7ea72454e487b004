package models

import "time"

// LessonProgress represents a user's progress on a lesson
type LessonProgress struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	LessonID     string     `json:"lessonId"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	TimeSpent    int        `json:"timeSpent"`
	LastPosition int        `json:"lastPosition"`
}

// ProgressTotals aggregates a user's lesson progress
type ProgressTotals struct {
	CompletedLessons int `json:"completedLessons"`
	TimeSpent        int `json:"timeSpent"`
}
