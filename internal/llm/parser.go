package llm

import (
	"errors"
	"strings"
)

// Model output arrives with markdown fences, stray quotes and
// whatever else the model felt like adding. Normalize before use.

func StripMarkdownFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// CleanPitch makes a one-liner presentable: no fences, no quotes,
// first line only.
func CleanPitch(raw string) string {
	s := StripMarkdownFences(raw)
	s = strings.ReplaceAll(s, `"`, "")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ParseComboDetails splits a "name | description" completion.
func ParseComboDetails(raw string) (name, description string, err error) {
	s := StripMarkdownFences(raw)
	if s == "" {
		return "", "", errors.New("empty combo details")
	}

	parts := strings.Split(s, "|")
	name = strings.TrimSpace(parts[0])
	description = strings.TrimSpace(parts[len(parts)-1])

	if name == "" || description == "" {
		return "", "", errors.New("malformed combo details")
	}
	return name, description, nil
}
