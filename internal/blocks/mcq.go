package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/edumynt/backend/internal/models"
)

// Verdict is the outcome shown after an option has been selected
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// String returns the text displayed for the verdict
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "Correct!"
	case VerdictIncorrect:
		return "Try again."
	default:
		return ""
	}
}

// Question is one rendered instance of an mcq block. The selection belongs to
// the instance only: a new instance always starts with nothing selected.
type Question struct {
	text     string
	options  []string
	correct  int
	selected int
}

// NewQuestion creates a question instance from mcq block data
func NewQuestion(data json.RawMessage) (*Question, error) {
	var d models.MCQData
	if err := decodeData(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode mcq data: %w", err)
	}
	if d.Question == nil {
		return nil, fmt.Errorf("mcq question: %w", ErrMissingField)
	}
	if len(d.Options) == 0 {
		return nil, fmt.Errorf("mcq options: %w", ErrMissingField)
	}
	if d.Correct == nil {
		return nil, fmt.Errorf("mcq correct: %w", ErrMissingField)
	}
	if *d.Correct < 0 || *d.Correct >= len(d.Options) {
		return nil, fmt.Errorf("mcq correct index %d out of range", *d.Correct)
	}

	return &Question{
		text:     *d.Question,
		options:  d.Options,
		correct:  *d.Correct,
		selected: -1,
	}, nil
}

// Select marks option i as the active selection, replacing any previous one
func (q *Question) Select(i int) error {
	if i < 0 || i >= len(q.options) {
		return fmt.Errorf("option %d: %w", i, models.ErrInvalidOption)
	}
	q.selected = i
	return nil
}

// Selected returns the selected option index, if any
func (q *Question) Selected() (int, bool) {
	return q.selected, q.selected >= 0
}

// Verdict reports whether the current selection is correct
func (q *Question) Verdict() Verdict {
	switch {
	case q.selected < 0:
		return VerdictNone
	case q.selected == q.correct:
		return VerdictCorrect
	default:
		return VerdictIncorrect
	}
}

var mcqTemplate = template.Must(template.New("mcq").Parse(
	`<div class="mcq my-4 p-4 border rounded">` +
		`<div class="font-medium mb-2">{{.Question}}</div>` +
		`{{range .Options}}<button type="submit" name="option" value="{{.Index}}" class="{{.Class}}"` +
		`{{if .State}} data-state="{{.State}}" aria-pressed="true"{{end}}>{{.Label}}</button>{{end}}` +
		`{{if .Verdict}}<div class="mt-2 text-sm" role="status">{{.Verdict}}</div>{{end}}` +
		`</div>`))

type mcqOption struct {
	Index int
	Label string
	Class string
	State string
}

// Render renders the question with the current selection marked.
// Only the selected option carries a correctness mark.
func (q *Question) Render() (template.HTML, error) {
	options := make([]mcqOption, len(q.options))
	for i, label := range q.options {
		opt := mcqOption{
			Index: i,
			Label: label,
			Class: "block w-full text-left p-2 rounded hover:bg-muted",
		}
		if i == q.selected {
			if i == q.correct {
				opt.Class = "block w-full text-left p-2 rounded bg-green-100"
				opt.State = "correct"
			} else {
				opt.Class = "block w-full text-left p-2 rounded bg-red-100"
				opt.State = "incorrect"
			}
		}
		options[i] = opt
	}

	var buf bytes.Buffer
	err := mcqTemplate.Execute(&buf, map[string]any{
		"Question": q.text,
		"Options":  options,
		"Verdict":  q.Verdict().String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render mcq: %w", err)
	}

	return template.HTML(buf.String()), nil
}

type mcqRenderer struct{}

func (mcqRenderer) Render(data json.RawMessage) (template.HTML, error) {
	q, err := NewQuestion(data)
	if err != nil {
		return "", err
	}
	return q.Render()
}
