package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/edumynt/backend/internal/models"
)

var imageTemplate = template.Must(template.New("image").Parse(
	`<figure class="my-4"><img src="{{.URL}}" alt="{{.Alt}}" class="rounded shadow">` +
		`{{if .Caption}}<figcaption class="text-center text-sm text-muted-foreground">{{.Caption}}</figcaption>{{end}}</figure>`))

type imageRenderer struct{}

func (imageRenderer) Render(data json.RawMessage) (template.HTML, error) {
	var d models.ImageData
	if err := decodeData(data, &d); err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}
	if d.URL == nil || *d.URL == "" {
		return "", fmt.Errorf("image url: %w", ErrMissingField)
	}

	var buf bytes.Buffer
	err := imageTemplate.Execute(&buf, map[string]string{
		"URL":     *d.URL,
		"Alt":     d.Alt,
		"Caption": d.Caption,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render image: %w", err)
	}

	return template.HTML(buf.String()), nil
}
