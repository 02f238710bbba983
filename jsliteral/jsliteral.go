// Package jsliteral converts permissive JavaScript object literals into
// strict structured data. It handles the looseness sites actually emit —
// unquoted keys, single-quoted strings, trailing commas, comments — and
// nothing more: there is no JavaScript evaluation, so a literal containing
// real expressions fails to parse and the caller falls back to other
// extraction strategies.
package jsliteral

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/vidmeta"
)

// Normalize rewrites a permissive object literal into strict JSON and
// decodes it into a key/value mapping. Bare identifiers other than
// true/false/null are quoted and pass through as opaque string values.
// Returns an EPARSE error when the rewritten text is not valid JSON.
func Normalize(src string) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(ToJSON(src)), &data); err != nil {
		return nil, vidmeta.Errorf(vidmeta.EPARSE, "invalid object literal: %v", err)
	}
	return data, nil
}

// ToJSON rewrites JavaScript-literal syntax into JSON syntax: bare keys and
// identifiers are double-quoted, single-quoted strings are requoted with
// correct escaping, trailing commas before closing braces/brackets are
// dropped, and comments are stripped. Numbers, punctuation, and the
// true/false/null literals pass through unchanged. The result is not
// guaranteed to be valid JSON; the caller must still decode it.
func ToJSON(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			i = copyString(&b, src, i)
		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			i = skipComment(src, i)
		case c == ',':
			// Drop the comma when the next token closes an object or array.
			if j := nextNonSpace(src, i+1); j < len(src) && (src[j] == '}' || src[j] == ']') {
				i++
				continue
			}
			b.WriteByte(',')
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			switch ident := src[i:j]; ident {
			case "true", "false", "null":
				b.WriteString(ident)
			default:
				b.WriteByte('"')
				b.WriteString(ident)
				b.WriteByte('"')
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// copyString copies the quoted string starting at src[start] into b as a
// double-quoted JSON string and returns the index past its closing quote.
func copyString(b *strings.Builder, src string, start int) int {
	quote := src[start]
	b.WriteByte('"')
	i := start + 1
	for i < len(src) {
		switch c := src[i]; {
		case c == '\\' && i+1 < len(src):
			// \' is not a valid JSON escape; unescape it.
			if next := src[i+1]; quote == '\'' && next == '\'' {
				b.WriteByte('\'')
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			i += 2
		case c == quote:
			b.WriteByte('"')
			return i + 1
		case c == '"':
			// Bare double quote inside a single-quoted string.
			b.WriteString(`\"`)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	b.WriteByte('"')
	return i
}

// skipComment returns the index past the comment starting at src[start].
func skipComment(src string, start int) int {
	if src[start+1] == '/' {
		if end := strings.IndexByte(src[start:], '\n'); end >= 0 {
			return start + end
		}
		return len(src)
	}
	if end := strings.Index(src[start+2:], "*/"); end >= 0 {
		return start + 2 + end + 2
	}
	return len(src)
}

// nextNonSpace returns the index of the first non-whitespace byte at or
// after i.
func nextNonSpace(src string, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c == '.' || (c >= '0' && c <= '9')
}
