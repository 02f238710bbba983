// Package normalize provides pure scalar normalizers for extracted metadata
// fields. Every function is soft: input that cannot be normalized yields the
// zero value, never an error, because a bad scalar must cost a single field,
// not the whole extraction.
package normalize

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// Date parses a textual date in any common representation (meta tag values
// like "2017-10-20 18:00:00", ISO-8601 datePublished fields) and returns the
// canonical YYYYMMDD form. Returns "" if no candidate format parses.
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return ""
	}
	return t.Format("20060102")
}

// Duration converts either a count of seconds ("137", 137) or a
// clock-formatted string ("1:02:18", "02:18") into whole seconds.
// Unparseable or negative input yields 0.
func Duration(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ":") {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || n < 0 {
			return 0
		}
		return int(n)
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// UnquotePlus percent-decodes s, treating "+" as a space. The input is
// returned unchanged when it is not valid percent-encoding.
func UnquotePlus(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

var (
	tagRE   = regexp.MustCompile(`<[^>]*>`)
	spaceRE = regexp.MustCompile(`\s+`)
)

// CleanHTML reduces a markup fragment to plain text: tags removed, entities
// decoded, whitespace runs collapsed.
func CleanHTML(s string) string {
	s = tagRE.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = spaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// RemoveEnd strips suffix from s when present.
func RemoveEnd(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}
