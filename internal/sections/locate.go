// Package sections implements the header-based section locating strategy
// shared by the extractors: a section spans from the first recognized header
// keyword to the nearest following next-section keyword, or to end of text.
package sections

import "strings"

// Vocabulary is an ordered header table for locating one kind of section.
// Headers are tried in listed order and matched case-insensitively anywhere
// in the text; the first header in the list that occurs wins, regardless of
// position. Next holds the keywords that terminate the section.
type Vocabulary struct {
	Headers []string
	Next    []string
}

// Locate returns the section of text selected by the vocabulary. When no
// header occurs, the entire text is treated as the section.
func (v Vocabulary) Locate(text string) string {
	textLower := strings.ToLower(text)

	for _, header := range v.Headers {
		start := strings.Index(textLower, header)
		if start < 0 {
			continue
		}

		// Section ends at the nearest next-section keyword after the header.
		end := len(text)
		searchFrom := start + len(header)
		for _, next := range v.Next {
			if idx := strings.Index(textLower[searchFrom:], next); idx >= 0 {
				if abs := searchFrom + idx; abs < end {
					end = abs
				}
			}
		}

		return text[start:end]
	}

	return text
}

// ContainsHeader reports whether the line mentions any of the vocabulary's
// headers (case-insensitive). Extractors use this to skip header lines when
// scanning a located section.
func (v Vocabulary) ContainsHeader(line string) bool {
	lineLower := strings.ToLower(line)
	for _, header := range v.Headers {
		if strings.Contains(lineLower, header) {
			return true
		}
	}
	return false
}
