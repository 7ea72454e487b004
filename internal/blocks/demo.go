package blocks

import (
	"encoding/json"

	"github.com/edumynt/backend/internal/models"
)

// DemoLessonTitle is the title of the built-in demonstration lesson
const DemoLessonTitle = "Demo Lesson"

// DemoContent returns a lesson body exercising every known block type.
// It stands in for lessons that have no stored content.
func DemoContent() models.LessonContent {
	return models.LessonContent{
		Blocks: []models.Block{
			{
				ID:   "demo-heading",
				Type: models.BlockTypeHeading,
				Data: json.RawMessage(`{"level":1,"text":"Welcome to the Demo Lesson"}`),
			},
			{
				ID:   "demo-text",
				Type: models.BlockTypeText,
				Data: json.RawMessage(`{"content":"This lesson shows every block type. Text supports **bold** and _italic_ emphasis and lists:\n\n- Headings\n- Images and videos\n- Custom HTML\n- Quick quizzes"}`),
			},
			{
				ID:   "demo-image",
				Type: models.BlockTypeImage,
				Data: json.RawMessage(`{"url":"https://images.unsplash.com/photo-1506744038136-46273834b3fb","alt":"Nature","caption":"A beautiful nature scene"}`),
			},
			{
				ID:   "demo-video",
				Type: models.BlockTypeVideo,
				Data: json.RawMessage(`{"url":"https://www.w3schools.com/html/mov_bbb.mp4","title":"Sample Video"}`),
			},
			{
				ID:   "demo-html",
				Type: models.BlockTypeHTML,
				Data: json.RawMessage(`{"html":"<div style=\"padding: 16px; border-radius: 8px; background-color: #eef2ff\"><b>Custom HTML</b> content with <em>inline styling</em>.</div>"}`),
			},
			{
				ID:   "demo-mcq",
				Type: models.BlockTypeMCQ,
				Data: json.RawMessage(`{"question":"What is 2 + 2?","options":["3","4","5"],"correct":1}`),
			},
		},
	}
}
