package blocks

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math"

	"github.com/edumynt/backend/internal/models"
)

// headingClasses holds the size class per heading level, largest first
var headingClasses = [...]string{
	1: "mt-6 mb-2 font-bold text-2xl",
	2: "mt-6 mb-2 font-bold text-xl",
	3: "mt-6 mb-2 font-bold text-lg",
	4: "mt-4 mb-2 font-semibold text-base",
	5: "mt-4 mb-1 font-semibold text-sm",
	6: "mt-4 mb-1 font-semibold text-xs",
}

type headingRenderer struct{}

func (headingRenderer) Render(data json.RawMessage) (template.HTML, error) {
	var d models.HeadingData
	if err := decodeData(data, &d); err != nil {
		return "", fmt.Errorf("failed to decode heading data: %w", err)
	}
	if d.Text == nil {
		return "", fmt.Errorf("heading text: %w", ErrMissingField)
	}
	// Levels are JSON numbers, so 2.0 is accepted and 2.5 is not
	if d.Level < 1 || d.Level > 6 || d.Level != math.Trunc(d.Level) {
		return "", fmt.Errorf("invalid heading level %v", d.Level)
	}
	level := int(d.Level)

	return template.HTML(fmt.Sprintf(`<h%d class="%s">%s</h%d>`,
		level, headingClasses[level], template.HTMLEscapeString(*d.Text), level)), nil
}
