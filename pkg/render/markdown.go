package render

import "strings"

// filterMarkdown renders GitHub-flavored markdown to HTML and sanitizes the
// result immediately. The engine sanitizes the whole document again after
// template evaluation; markdown output is cleaned here as well so nested raw
// HTML never survives even if the outer pass changes.
func (e *Engine) filterMarkdown(v any) string {
	src := stringValue(v)
	if src == "" {
		return ""
	}

	var buf strings.Builder
	if err := e.markdown.Convert([]byte(src), &buf); err != nil {
		// Mirror the display contract of the codec: fall back to the raw
		// text rather than dropping the field.
		return e.policy.Sanitize(src)
	}
	return e.policy.Sanitize(buf.String())
}
