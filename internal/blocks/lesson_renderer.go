package blocks

import (
	"fmt"
	"html/template"
	"io"

	"github.com/edumynt/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRenderer renders an ordered sequence of blocks
type LessonRenderer struct {
	registry *Registry
	logger   *zap.Logger
}

// NewLessonRenderer creates a new lesson renderer
func NewLessonRenderer(registry *Registry, logger *zap.Logger) *LessonRenderer {
	return &LessonRenderer{
		registry: registry,
		logger:   logger,
	}
}

// Render renders blocks in order, one fragment per block keyed by the block ID.
// A block that cannot be rendered yields a placeholder fragment and never
// affects its siblings.
func (r *LessonRenderer) Render(blocks []models.Block) []models.Fragment {
	fragments := make([]models.Fragment, 0, len(blocks))
	for _, block := range blocks {
		fragments = append(fragments, r.RenderBlock(block))
	}
	return fragments
}

// RenderBlock renders a single block
func (r *LessonRenderer) RenderBlock(block models.Block) models.Fragment {
	renderer, ok := r.registry.Lookup(block.Type)
	if !ok {
		return UnknownFragment(block)
	}

	html, err := safeRender(renderer, block)
	if err != nil {
		r.logger.Warn("failed to render lesson block",
			zap.String("block_id", block.ID),
			zap.String("block_type", string(block.Type)),
			zap.Error(err),
		)
		return InvalidFragment(block)
	}

	return models.Fragment{
		ID:     block.ID,
		Type:   block.Type,
		Status: models.FragmentStatusOK,
		HTML:   string(html),
	}
}

// Answer renders an mcq block on a fresh question instance with one option
// selected. Nothing about the selection outlives the call.
func (r *LessonRenderer) Answer(block models.Block, option int) (*models.AnswerResponse, error) {
	if block.Type != models.BlockTypeMCQ {
		return nil, fmt.Errorf("block %s is not a question: %w", block.ID, models.ErrBlockNotFound)
	}

	q, err := NewQuestion(block.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w: %w", models.ErrInvalidQuestion, err)
	}
	if err := q.Select(option); err != nil {
		return nil, err
	}

	html, err := q.Render()
	if err != nil {
		return nil, err
	}

	verdict := q.Verdict()
	return &models.AnswerResponse{
		BlockID:  block.ID,
		Selected: option,
		Correct:  verdict == VerdictCorrect,
		Verdict:  verdict.String(),
		Fragment: models.Fragment{
			ID:     block.ID,
			Type:   block.Type,
			Status: models.FragmentStatusOK,
			HTML:   string(html),
		},
	}, nil
}

// safeRender converts a renderer panic into an error
func safeRender(renderer Renderer, block models.Block) (html template.HTML, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("renderer panic: %v", rec)
		}
	}()
	return renderer.Render(block.Data)
}

// UnknownFragment is emitted for a block type with no renderer. It names the
// type so content authors can find the mistake.
func UnknownFragment(block models.Block) models.Fragment {
	return models.Fragment{
		ID:     block.ID,
		Type:   block.Type,
		Status: models.FragmentStatusUnknown,
		HTML: `<div class="lesson-block-unknown p-2 border rounded text-sm text-muted-foreground">Unknown block type: ` +
			template.HTMLEscapeString(string(block.Type)) + `</div>`,
	}
}

// InvalidFragment is emitted for a block whose data could not be rendered
func InvalidFragment(block models.Block) models.Fragment {
	return models.Fragment{
		ID:     block.ID,
		Type:   block.Type,
		Status: models.FragmentStatusInvalid,
		HTML: `<div class="lesson-block-error p-2 border rounded text-sm" role="alert">Unable to display this ` +
			template.HTMLEscapeString(string(block.Type)) + ` block</div>`,
	}
}

var documentTemplate = template.Must(template.New("lesson").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main class="lesson max-w-2xl mx-auto w-full px-4 py-6">
<h1 class="text-2xl md:text-3xl font-bold mb-4">{{.Title}}</h1>
<div class="space-y-6">
{{range .Blocks}}{{if .Interactive}}<form class="lesson-block" method="post" data-block-id="{{.ID}}" data-block-type="{{.Type}}">` +
	`<input type="hidden" name="block" value="{{.ID}}">{{.HTML}}</form>
{{else}}<div class="lesson-block" data-block-id="{{.ID}}" data-block-type="{{.Type}}">{{.HTML}}</div>
{{end}}{{end}}</div>
</main>
</body>
</html>
`))

type documentBlock struct {
	ID          string
	Type        models.BlockType
	HTML        template.HTML
	Interactive bool
}

// WriteDocument writes rendered fragments as a complete HTML page, stacked
// vertically in block order
func (r *LessonRenderer) WriteDocument(w io.Writer, title string, fragments []models.Fragment) error {
	docBlocks := make([]documentBlock, len(fragments))
	for i, f := range fragments {
		// Fragment HTML was produced by the renderers above and is already safe.
		docBlocks[i] = documentBlock{
			ID:          f.ID,
			Type:        f.Type,
			HTML:        template.HTML(f.HTML),
			Interactive: f.Type == models.BlockTypeMCQ && f.Status == models.FragmentStatusOK,
		}
	}

	if err := documentTemplate.Execute(w, map[string]any{
		"Title":  title,
		"Blocks": docBlocks,
	}); err != nil {
		return fmt.Errorf("failed to write lesson document: %w", err)
	}
	return nil
}
