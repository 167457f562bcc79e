// Package render splits raw AI text into display segments.
//
// The split heuristic (blank line between paragraphs, first ": " ending a subtitle)
// depends on the collaborator honouring the requested format. Output that does not
// follow it degrades to raw text rather than failing.
package render

import (
	"strings"
	"unicode/utf8"
)

const (
	paragraphSeparator = "\n\n"
	subtitleSeparator  = ": "
	// maxSubtitleLength guards against treating a sentence with a colon as a subtitle.
	maxSubtitleLength = 80
)

// Segment is one displayable paragraph.
type Segment struct {
	Subtitle string `json:"subtitle,omitempty"`
	Body     string `json:"body"`
}

// SplitParagraphs splits text on blank lines and extracts "Subtitle: body" prefixes.
// Empty paragraphs are dropped.
func SplitParagraphs(text string) []Segment {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, paragraphSeparator)
	segments := make([]Segment, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segments = append(segments, splitSubtitle(p))
	}
	return segments
}

// SplitExpected splits text and reports whether at least want paragraphs came back.
// When they did not, it returns the whole text as a single raw segment.
func SplitExpected(text string, want int) ([]Segment, bool) {
	segments := SplitParagraphs(text)
	if len(segments) >= want && len(segments) > 0 {
		return segments, true
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	return []Segment{{Body: trimmed}}, false
}

func splitSubtitle(paragraph string) Segment {
	i := strings.Index(paragraph, subtitleSeparator)
	if i <= 0 {
		return Segment{Body: paragraph}
	}
	subtitle := strings.TrimSpace(paragraph[:i])
	body := strings.TrimSpace(paragraph[i+len(subtitleSeparator):])
	if subtitle == "" || body == "" ||
		strings.Contains(subtitle, "\n") ||
		utf8.RuneCountInString(subtitle) > maxSubtitleLength {
		return Segment{Body: paragraph}
	}
	// Models often bold the subtitle.
	subtitle = strings.Trim(subtitle, "*# ")
	if subtitle == "" {
		return Segment{Body: paragraph}
	}
	return Segment{Subtitle: subtitle, Body: body}
}
