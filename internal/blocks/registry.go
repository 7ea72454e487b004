// Package blocks renders lesson content blocks into HTML fragments.
package blocks

import (
	"encoding/json"
	"errors"
	"html/template"
	"sort"

	"github.com/edumynt/backend/internal/models"
)

// ErrMissingField is returned when block data lacks a required field
var ErrMissingField = errors.New("missing required field")

// RenderVersion identifies the current fragment markup and sanitizer policies.
// Bump it whenever a template or policy changes so cached fragments are not reused.
const RenderVersion = 1

// Renderer turns the data of one block into an HTML fragment
type Renderer interface {
	// Render renders a block payload
	//
	// "data" is the raw block data, its shape depends on the block type.
	//
	// Returns the rendered HTML and an error if the data is malformed.
	Render(data json.RawMessage) (template.HTML, error)
}

// Registry maps block types to their renderers.
// It is filled once by NewRegistry and never changes afterwards.
type Registry struct {
	renderers map[models.BlockType]Renderer
}

// NewRegistry creates a registry holding every known block type
//
// "content" sanitizes raw HTML of html blocks.
// "markdown" sanitizes the output of the markdown renderer.
// A nil sanitizer makes the renderer that needs it emit nothing.
func NewRegistry(content, markdown Sanitizer) *Registry {
	return &Registry{
		renderers: map[models.BlockType]Renderer{
			models.BlockTypeHeading: headingRenderer{},
			models.BlockTypeText:    newTextRenderer(markdown),
			models.BlockTypeImage:   imageRenderer{},
			models.BlockTypeVideo:   videoRenderer{},
			models.BlockTypeHTML:    htmlRenderer{sanitizer: content},
			models.BlockTypeMCQ:     mcqRenderer{},
		},
	}
}

// DefaultRegistry creates a registry with the standard sanitization policies
func DefaultRegistry() *Registry {
	return NewRegistry(NewPolicySanitizer(ContentPolicy), NewPolicySanitizer(MarkdownPolicy))
}

// Lookup returns the renderer registered for a block type
func (r *Registry) Lookup(blockType models.BlockType) (Renderer, bool) {
	renderer, ok := r.renderers[blockType]
	return renderer, ok
}

// Types returns the registered block types in lexical order
func (r *Registry) Types() []models.BlockType {
	types := make([]models.BlockType, 0, len(r.renderers))
	for t := range r.renderers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// decodeData unmarshals block data, treating absent data as an empty object
func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return json.Unmarshal([]byte("{}"), v)
	}
	return json.Unmarshal(data, v)
}
