package models

import (
	"encoding/json"
	"time"
)

// LessonType represents the kind of a lesson
type LessonType string

const (
	LessonTypeVideo       LessonType = "video"
	LessonTypeText        LessonType = "text"
	LessonTypeInteractive LessonType = "interactive"
)

// Lesson represents a lesson in a course
type Lesson struct {
	ID                string          `json:"id"`
	CourseID          string          `json:"courseId"`
	Title             string          `json:"title"`
	Content           json.RawMessage `json:"-"`
	VideoURL          string          `json:"videoUrl,omitempty"`
	LessonType        LessonType      `json:"lessonType"`
	OrderIndex        int             `json:"orderIndex"`
	IsPreview         bool            `json:"isPreview"`
	EstimatedDuration int             `json:"estimatedDuration"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// LessonListItem represents a lesson in course lesson lists
type LessonListItem struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	LessonType        LessonType `json:"lessonType"`
	OrderIndex        int        `json:"orderIndex"`
	IsPreview         bool       `json:"isPreview"`
	EstimatedDuration int        `json:"estimatedDuration"`
	Completed         bool       `json:"completed"`
	Locked            bool       `json:"locked"`
}

// LessonNavItem is a link to a neighbouring lesson
type LessonNavItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Fragment is the rendered output of one block, keyed by the block ID
type Fragment struct {
	ID     string         `json:"id"`
	Type   BlockType      `json:"type"`
	Status FragmentStatus `json:"status"`
	HTML   string         `json:"html"`
}

// FragmentStatus tells whether a block rendered normally
type FragmentStatus string

const (
	FragmentStatusOK      FragmentStatus = "ok"
	FragmentStatusUnknown FragmentStatus = "unknown"
	FragmentStatusInvalid FragmentStatus = "invalid"
)

// LessonResponse represents a rendered lesson in API responses
type LessonResponse struct {
	Lesson    *Lesson        `json:"lesson"`
	Blocks    []Fragment     `json:"blocks"`
	Completed bool           `json:"completed"`
	Demo      bool           `json:"demo"`
	Prev      *LessonNavItem `json:"prev,omitempty"`
	Next      *LessonNavItem `json:"next,omitempty"`
}

// AnswerResponse represents the outcome of selecting a question option
type AnswerResponse struct {
	BlockID  string   `json:"blockId"`
	Selected int      `json:"selected"`
	Correct  bool     `json:"correct"`
	Verdict  string   `json:"verdict"`
	Fragment Fragment `json:"fragment"`
}

// CompleteLessonRequest represents a request to mark a lesson as completed
type CompleteLessonRequest struct {
	TimeSpent int `json:"timeSpent,omitempty" example:"300"`
}

// Selection is a chosen option of one question block on a rendered page
type Selection struct {
	BlockID string
	Option  int
}

// LessonPage is a lesson prepared for full document rendering
type LessonPage struct {
	Title     string
	Fragments []Fragment
}
