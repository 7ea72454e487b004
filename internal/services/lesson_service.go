package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/edumynt/backend/internal/blocks"
	"github.com/edumynt/backend/internal/models"
	"go.uber.org/zap"
)

// LessonProgressRepository defines methods for lesson progress data access
type LessonProgressRepository interface {
	// MarkCompleted upserts a completed progress record
	//
	// "ctx" is the context for the request.
	// "progress" is the progress record; ID and CompletedAt are filled in when empty.
	//
	// Returns an error if any.
	MarkCompleted(ctx context.Context, progress *models.LessonProgress) error
	// CountCompletedByCourse counts the completed lessons of a course for a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the number of completed lessons and an error if any.
	CountCompletedByCourse(ctx context.Context, userID, courseID string) (int, error)
	// GetTotals aggregates completed lessons and time spent for a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the totals and an error if any.
	GetTotals(ctx context.Context, userID string) (*models.ProgressTotals, error)
}

// LessonRenderer turns lesson blocks into HTML fragments
type LessonRenderer interface {
	// Render renders blocks in order, one fragment per block
	Render(blocks []models.Block) []models.Fragment
	// Answer renders a question block with one option selected
	Answer(block models.Block, option int) (*models.AnswerResponse, error)
	// WriteDocument writes fragments as a complete HTML page
	WriteDocument(w io.Writer, title string, fragments []models.Fragment) error
}

// RenderCache caches rendered fragments per lesson content
type RenderCache interface {
	// Get returns cached fragments for the lesson content, if present
	Get(ctx context.Context, lessonID string, content []byte) ([]models.Fragment, bool)
	// Set stores fragments for the lesson content
	Set(ctx context.Context, lessonID string, content []byte, fragments []models.Fragment)
}

type lessonService struct {
	courseRepo     CourseRepository
	lessonRepo     LessonRepository
	enrollmentRepo EnrollmentRepository
	progressRepo   LessonProgressRepository
	renderer       LessonRenderer
	cache          RenderCache
	logger         *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	enrollmentRepo EnrollmentRepository,
	progressRepo LessonProgressRepository,
	renderer LessonRenderer,
	cache RenderCache,
	logger *zap.Logger,
) *lessonService {
	return &lessonService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		renderer:       renderer,
		cache:          cache,
		logger:         logger,
	}
}

// GetDemoLesson renders the built-in demo lesson
func (s *lessonService) GetDemoLesson(ctx context.Context) *models.LessonResponse {
	return &models.LessonResponse{
		Lesson: &models.Lesson{
			ID:         "demo",
			Title:      blocks.DemoLessonTitle,
			LessonType: models.LessonTypeInteractive,
		},
		Blocks: s.renderer.Render(blocks.DemoContent().Blocks),
		Demo:   true,
	}
}

// GetDemoPage prepares the demo lesson as a page, optionally with one question answered
func (s *lessonService) GetDemoPage(ctx context.Context, selection *models.Selection) (*models.LessonPage, error) {
	content := blocks.DemoContent()
	fragments, err := s.applySelection(content, s.renderer.Render(content.Blocks), selection)
	if err != nil {
		return nil, err
	}
	return &models.LessonPage{Title: blocks.DemoLessonTitle, Fragments: fragments}, nil
}

// AnswerDemoQuestion answers a question of the demo lesson
func (s *lessonService) AnswerDemoQuestion(ctx context.Context, blockID string, option int) (*models.AnswerResponse, error) {
	content := blocks.DemoContent()
	return s.answer(content, blockID, option)
}

// GetLesson retrieves a rendered lesson of a course with navigation and completion status
func (s *lessonService) GetLesson(ctx context.Context, courseID, lessonID, userID string) (*models.LessonResponse, error) {
	lesson, err := s.loadAccessibleLesson(ctx, courseID, lessonID, userID)
	if err != nil {
		return nil, err
	}

	content, demo, err := lessonContent(lesson)
	if err != nil {
		return nil, err
	}

	siblings, err := s.lessonRepo.GetByCourseID(ctx, courseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course lessons: %w", err)
	}

	response := &models.LessonResponse{
		Lesson: lesson,
		Blocks: s.renderContent(ctx, lesson, content, demo),
		Demo:   demo,
	}
	for i, sibling := range siblings {
		if sibling.ID != lesson.ID {
			continue
		}
		response.Completed = sibling.Completed
		if i > 0 {
			response.Prev = &models.LessonNavItem{ID: siblings[i-1].ID, Title: siblings[i-1].Title}
		}
		if i < len(siblings)-1 {
			response.Next = &models.LessonNavItem{ID: siblings[i+1].ID, Title: siblings[i+1].Title}
		}
		break
	}

	return response, nil
}

// GetLessonPage prepares a lesson as a page, optionally with one question answered
func (s *lessonService) GetLessonPage(ctx context.Context, courseID, lessonID, userID string, selection *models.Selection) (*models.LessonPage, error) {
	lesson, err := s.loadAccessibleLesson(ctx, courseID, lessonID, userID)
	if err != nil {
		return nil, err
	}

	content, demo, err := lessonContent(lesson)
	if err != nil {
		return nil, err
	}

	fragments, err := s.applySelection(content, s.renderContent(ctx, lesson, content, demo), selection)
	if err != nil {
		return nil, err
	}

	return &models.LessonPage{Title: lesson.Title, Fragments: fragments}, nil
}

// WritePage writes a prepared page as a complete HTML document
func (s *lessonService) WritePage(w io.Writer, page *models.LessonPage) error {
	return s.renderer.WriteDocument(w, page.Title, page.Fragments)
}

// CompleteLesson marks a lesson as completed and recomputes course progress
func (s *lessonService) CompleteLesson(ctx context.Context, lessonID, userID string, timeSpent int) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get lesson: %w", err)
	}

	enrollment, err := findEnrollment(ctx, s.enrollmentRepo, userID, lesson.CourseID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return models.ErrNotEnrolled
	}

	if timeSpent < 0 {
		timeSpent = 0
	}
	progress := &models.LessonProgress{
		UserID:    userID,
		LessonID:  lesson.ID,
		TimeSpent: timeSpent,
	}
	if err := s.progressRepo.MarkCompleted(ctx, progress); err != nil {
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}

	completed, err := s.progressRepo.CountCompletedByCourse(ctx, userID, lesson.CourseID)
	if err != nil {
		return fmt.Errorf("failed to count completed lessons: %w", err)
	}
	total, err := s.lessonRepo.CountByCourseID(ctx, lesson.CourseID)
	if err != nil {
		return fmt.Errorf("failed to count lessons: %w", err)
	}

	percentage := progressPercentage(completed, total)
	// A recorded completion time is kept even if progress later drops below 100
	completedAt := enrollment.CompletedAt
	if percentage == 100 && completedAt == nil {
		now := time.Now().UTC()
		completedAt = &now
	}

	if err := s.enrollmentRepo.UpdateProgress(ctx, enrollment.ID, percentage, completedAt); err != nil {
		return fmt.Errorf("failed to update enrollment progress: %w", err)
	}

	s.logger.Info("lesson completed",
		zap.String("user_id", userID),
		zap.String("lesson_id", lesson.ID),
		zap.Int("progress", percentage),
	)
	return nil
}

// AnswerQuestion selects an option of a question block and returns the verdict
func (s *lessonService) AnswerQuestion(ctx context.Context, lessonID, blockID, userID string, option int) (*models.AnswerResponse, error) {
	lesson, err := s.loadAccessibleLesson(ctx, "", lessonID, userID)
	if err != nil {
		return nil, err
	}

	content, _, err := lessonContent(lesson)
	if err != nil {
		return nil, err
	}

	return s.answer(content, blockID, option)
}

// loadAccessibleLesson retrieves a lesson the user is allowed to open
// A non-empty courseID must match the lesson's course.
func (s *lessonService) loadAccessibleLesson(ctx context.Context, courseID, lessonID, userID string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	if courseID != "" && lesson.CourseID != courseID {
		return nil, models.ErrLessonNotFound
	}

	course, err := getPublishedCourse(ctx, s.courseRepo, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	// Enrollment is only looked up when the lesson is not open anyway
	if canAccess(course, lesson.IsPreview, false) {
		return lesson, nil
	}
	enrollment, err := findEnrollment(ctx, s.enrollmentRepo, userID, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, models.ErrLessonLocked
	}

	return lesson, nil
}

// renderContent renders lesson content through the cache
// Substituted demo content is rendered directly.
func (s *lessonService) renderContent(ctx context.Context, lesson *models.Lesson, content models.LessonContent, demo bool) []models.Fragment {
	if demo {
		return s.renderer.Render(content.Blocks)
	}

	if fragments, ok := s.cache.Get(ctx, lesson.ID, lesson.Content); ok {
		return fragments
	}

	fragments := s.renderer.Render(content.Blocks)
	s.cache.Set(ctx, lesson.ID, lesson.Content, fragments)
	return fragments
}

// applySelection replaces the fragment of the selected question with its answered rendering
func (s *lessonService) applySelection(content models.LessonContent, fragments []models.Fragment, selection *models.Selection) ([]models.Fragment, error) {
	if selection == nil {
		return fragments, nil
	}

	answer, err := s.answer(content, selection.BlockID, selection.Option)
	if errors.Is(err, models.ErrInvalidQuestion) {
		// The block already holds its invalid fragment
		s.logger.Warn("selection ignored for invalid question",
			zap.String("block_id", selection.BlockID),
			zap.Error(err),
		)
		return fragments, nil
	}
	if err != nil {
		return nil, err
	}

	// Cached slices are shared, so the replacement goes into a copy
	out := make([]models.Fragment, len(fragments))
	copy(out, fragments)
	for i := range out {
		if out[i].ID == answer.BlockID {
			out[i] = answer.Fragment
		}
	}
	return out, nil
}

// answer applies a selection to a question block of the content
func (s *lessonService) answer(content models.LessonContent, blockID string, option int) (*models.AnswerResponse, error) {
	block, ok := content.FindBlock(blockID)
	if !ok {
		return nil, models.ErrBlockNotFound
	}

	response, err := s.renderer.Answer(*block, option)
	if err != nil {
		return nil, fmt.Errorf("failed to answer question: %w", err)
	}
	return response, nil
}

// lessonContent decodes stored content, substituting the demo lesson when it is null or empty
func lessonContent(lesson *models.Lesson) (models.LessonContent, bool, error) {
	var content models.LessonContent
	if len(lesson.Content) > 0 && string(lesson.Content) != "null" {
		if err := json.Unmarshal(lesson.Content, &content); err != nil {
			return models.LessonContent{}, false, fmt.Errorf("failed to decode lesson content: %w", err)
		}
	}

	if len(content.Blocks) == 0 {
		return blocks.DemoContent(), true, nil
	}
	return content, false, nil
}

// progressPercentage computes whole-number course progress
func progressPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	percentage := completed * 100 / total
	if percentage > 100 {
		return 100
	}
	return percentage
}
