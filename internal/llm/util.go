package llm

import "strings"

// CleanJSONBlock strips a surrounding markdown code fence from an LLM
// response. Models wrap JSON in ```json fences even when told not to, so
// JSON-mode responses pass through here before parsing.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")

	// Drop any other language tag on the opening fence line, e.g. ```yaml.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		tag := body[:idx]
		if len(tag) < 20 && !strings.ContainsAny(tag, " {") {
			body = body[idx+1:]
		}
	}

	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
