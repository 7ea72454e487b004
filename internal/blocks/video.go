package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/edumynt/backend/internal/models"
)

// The container keeps a 16:9 box whatever the source dimensions are.
var videoTemplate = template.Must(template.New("video").Parse(
	`<div class="aspect-video my-4" style="aspect-ratio: 16 / 9">` +
		`<video controls src="{{.URL}}"{{if .Title}} title="{{.Title}}"{{end}} class="w-full h-full rounded"></video></div>`))

type videoRenderer struct{}

func (videoRenderer) Render(data json.RawMessage) (template.HTML, error) {
	var d models.VideoData
	if err := decodeData(data, &d); err != nil {
		return "", fmt.Errorf("failed to decode video data: %w", err)
	}
	if d.URL == nil || *d.URL == "" {
		return "", fmt.Errorf("video url: %w", ErrMissingField)
	}

	var buf bytes.Buffer
	err := videoTemplate.Execute(&buf, map[string]string{
		"URL":   *d.URL,
		"Title": d.Title,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render video: %w", err)
	}

	return template.HTML(buf.String()), nil
}
