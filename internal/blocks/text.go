package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/edumynt/backend/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// textRenderer renders markdown. Raw HTML inside the markdown is never passed
// through: goldmark omits it and the output is sanitized afterwards.
type textRenderer struct {
	md        goldmark.Markdown
	sanitizer Sanitizer
}

func newTextRenderer(sanitizer Sanitizer) textRenderer {
	return textRenderer{
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: sanitizer,
	}
}

func (r textRenderer) Render(data json.RawMessage) (template.HTML, error) {
	var d models.TextData
	if err := decodeData(data, &d); err != nil {
		return "", fmt.Errorf("failed to decode text data: %w", err)
	}
	if d.Content == nil {
		return "", fmt.Errorf("text content: %w", ErrMissingField)
	}
	if r.sanitizer == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(*d.Content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	return template.HTML(`<div class="prose max-w-none">` + r.sanitizer.Sanitize(buf.String()) + `</div>`), nil
}
