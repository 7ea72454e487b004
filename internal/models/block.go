package models

import "encoding/json"

// BlockType represents the type of a lesson block
type BlockType string

const (
	BlockTypeHeading BlockType = "heading"
	BlockTypeText    BlockType = "text"
	BlockTypeImage   BlockType = "image"
	BlockTypeVideo   BlockType = "video"
	BlockTypeHTML    BlockType = "html"
	BlockTypeMCQ     BlockType = "mcq"
)

// Block represents one typed unit of lesson content.
// The shape of Data is determined entirely by Type.
type Block struct {
	ID   string          `json:"id"`
	Type BlockType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// LessonContent is the stored body of a lesson. Block order is rendering order.
type LessonContent struct {
	Blocks []Block `json:"blocks"`
}

// FindBlock returns the block with the given ID
func (c *LessonContent) FindBlock(id string) (*Block, bool) {
	for i := range c.Blocks {
		if c.Blocks[i].ID == id {
			return &c.Blocks[i], true
		}
	}
	return nil, false
}

// HeadingData is the payload of a heading block
type HeadingData struct {
	Level float64 `json:"level"`
	Text  *string `json:"text"`
}

// TextData is the payload of a text block
type TextData struct {
	Content *string `json:"content"`
}

// ImageData is the payload of an image block
type ImageData struct {
	URL     *string `json:"url"`
	Alt     string  `json:"alt,omitempty"`
	Caption string  `json:"caption,omitempty"`
}

// VideoData is the payload of a video block
type VideoData struct {
	URL   *string `json:"url"`
	Title string  `json:"title,omitempty"`
}

// HTMLData is the payload of an html block. HTML is untrusted.
type HTMLData struct {
	HTML *string `json:"html"`
}

// MCQData is the payload of a multiple choice question block
type MCQData struct {
	Question *string  `json:"question"`
	Options  []string `json:"options"`
	Correct  *int     `json:"correct"`
}

// AnswerRequest represents a request to select an option of a question block
type AnswerRequest struct {
	Option *int `json:"option" example:"1"`
}
