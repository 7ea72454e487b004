package blocks

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/edumynt/backend/internal/models"
)

// htmlRenderer emits author supplied HTML. Nothing reaches the output without
// passing the sanitizer; with no sanitizer the block renders empty.
type htmlRenderer struct {
	sanitizer Sanitizer
}

func (r htmlRenderer) Render(data json.RawMessage) (template.HTML, error) {
	var d models.HTMLData
	if err := decodeData(data, &d); err != nil {
		return "", fmt.Errorf("failed to decode html data: %w", err)
	}
	if d.HTML == nil {
		return "", fmt.Errorf("html: %w", ErrMissingField)
	}
	if r.sanitizer == nil {
		return "", nil
	}

	return template.HTML(`<div class="html-block">` + r.sanitizer.Sanitize(*d.HTML) + `</div>`), nil
}
