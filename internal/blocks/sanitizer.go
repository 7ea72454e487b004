package blocks

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes active content from untrusted HTML
type Sanitizer interface {
	Sanitize(html string) string
}

// PolicySanitizer builds its bluemonday policy on first use and reuses it.
// Sanitize blocks until the policy exists, so callers never see unsanitized output.
type PolicySanitizer struct {
	once   sync.Once
	build  func() *bluemonday.Policy
	policy *bluemonday.Policy
}

// NewPolicySanitizer creates a sanitizer from a policy constructor
func NewPolicySanitizer(build func() *bluemonday.Policy) *PolicySanitizer {
	return &PolicySanitizer{build: build}
}

// Sanitize returns html with disallowed elements and attributes removed
func (s *PolicySanitizer) Sanitize(html string) string {
	s.once.Do(func() {
		s.policy = s.build()
	})
	return s.policy.Sanitize(html)
}

// MarkdownPolicy is applied to rendered markdown
func MarkdownPolicy() *bluemonday.Policy {
	return bluemonday.UGCPolicy()
}

// ContentPolicy is applied to html blocks. On top of the UGC policy it keeps
// layout elements, classes and a whitelist of inline style properties.
func ContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "section", "b", "strong", "i", "em", "u", "small", "mark")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").Globally()
	p.AllowStyles(
		"color", "background-color", "text-align", "font-weight", "font-style", "font-size",
		"text-decoration", "padding", "margin", "border", "border-radius", "display",
		"width", "max-width", "height",
	).Globally()
	return p
}
