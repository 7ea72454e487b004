package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/edumynt/backend/internal/models"
	"github.com/edumynt/backend/libs/handlers"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DemoService is the interface that wraps methods for the built-in demo lesson
type DemoService interface {
	// GetDemoLesson renders the demo lesson
	//
	// "ctx" is the context for the request.
	//
	// Returns the rendered lesson.
	GetDemoLesson(ctx context.Context) *models.LessonResponse
	// GetDemoPage prepares the demo lesson as a page
	//
	// "ctx" is the context for the request.
	// "selection" is the answered question, nil when nothing was answered.
	//
	// Returns the page and an error if any.
	GetDemoPage(ctx context.Context, selection *models.Selection) (*models.LessonPage, error)
	// AnswerDemoQuestion answers a question of the demo lesson
	//
	// "ctx" is the context for the request.
	// "blockID" is the ID of the question block.
	// "option" is the index of the selected option.
	//
	// Returns the verdict with the answered fragment and an error if any.
	AnswerDemoQuestion(ctx context.Context, blockID string, option int) (*models.AnswerResponse, error)
	// WritePage writes a prepared page as an HTML document
	WritePage(w io.Writer, page *models.LessonPage) error
}

// DemoHandler handles HTTP requests for the demo lesson
type DemoHandler struct {
	handlers.BaseHandler
	service DemoService
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(svc DemoService, logger *zap.Logger) *DemoHandler {
	return &DemoHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all demo handler routes
func (h *DemoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/demo/lesson", func(r chi.Router) {
		r.Get("/", h.GetDemoLesson)
		r.Get("/page", h.GetDemoPage)
		r.Post("/page", h.GetDemoPage)
		r.Post("/blocks/{blockId}/answer", h.AnswerDemoQuestion)
	})
}

// GetDemoLesson handles GET /demo/lesson
// @Summary Get demo lesson
// @Description Get the built-in demo lesson with one rendered fragment per block
// @Tags demo
// @Produce json
// @Success 200 {object} models.LessonResponse "Rendered demo lesson"
// @Router /demo/lesson [get]
func (h *DemoHandler) GetDemoLesson(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.GetDemoLesson(r.Context()))
}

// GetDemoPage handles GET and POST /demo/lesson/page
// @Summary Get demo lesson page
// @Description Get the demo lesson as an HTML document. Posting a question form answers that question.
// @Tags demo
// @Accept x-www-form-urlencoded
// @Produce html
// @Param block formData string false "Question block ID (POST only)"
// @Param option formData int false "Selected option index (POST only)"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Block not found"
// @Router /demo/lesson/page [get]
// @Router /demo/lesson/page [post]
func (h *DemoHandler) GetDemoPage(w http.ResponseWriter, r *http.Request) {
	var selection *models.Selection
	if r.Method == http.MethodPost {
		var err error
		selection, err = parseSelection(r)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	page, err := h.service.GetDemoPage(r.Context(), selection)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to get demo page")
		return
	}

	h.RespondHTML(w, http.StatusOK, func(w io.Writer) error {
		return h.service.WritePage(w, page)
	})
}

// AnswerDemoQuestion handles POST /demo/lesson/blocks/{blockId}/answer
// @Summary Answer demo question
// @Description Select an option of a demo lesson question and get the verdict
// @Tags demo
// @Accept json
// @Produce json
// @Param blockId path string true "Question block ID"
// @Param request body models.AnswerRequest true "Selected option"
// @Success 200 {object} models.AnswerResponse "Verdict and answered fragment"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Block not found"
// @Router /demo/lesson/blocks/{blockId}/answer [post]
func (h *DemoHandler) AnswerDemoQuestion(w http.ResponseWriter, r *http.Request) {
	blockID := chi.URLParam(r, "blockId")

	option, err := decodeAnswer(&h.BaseHandler, r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.service.AnswerDemoQuestion(r.Context(), blockID, option)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err, "failed to answer demo question")
		return
	}

	h.RespondJSON(w, http.StatusOK, answer)
}
