package models

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseNotPublished = errors.New("course is not published")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrBlockNotFound      = errors.New("block not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrNotEnrolled        = errors.New("not enrolled in course")
	ErrLessonLocked       = errors.New("lesson is locked")
	ErrInvalidOption      = errors.New("invalid option")
	ErrInvalidQuestion    = errors.New("question data is invalid")
)
