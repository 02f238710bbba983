package vidmeta

import "regexp"

// SourceKind identifies one strategy for resolving a canonical field.
type SourceKind int

// Field source kinds, composable per field per variant.
const (
	// SourceLiteral reads a named key (with alternates) from the normalized
	// embedded object literal.
	SourceLiteral SourceKind = iota + 1

	// SourceMeta reads an HTML meta tag by name or itemprop, trying multiple
	// candidate names in order.
	SourceMeta

	// SourcePattern applies a field-specific regular expression directly to
	// the raw page text. Used when a variant has no embedded literal, or the
	// literal omits the field.
	SourcePattern

	// SourceOpenGraph reads a standard og:<property> social-metadata tag,
	// the last resort for descriptive fields.
	SourceOpenGraph

	// SourceURLID yields the identifier captured by the variant's URL
	// pattern during routing.
	SourceURLID
)

// FieldSource is a single strategy in a field's fallback chain.
type FieldSource struct {
	Kind SourceKind

	// Keys holds literal keys, meta tag names, or the open-graph property,
	// depending on Kind.
	Keys []string

	// Pattern is the expression for SourcePattern sources. Its first capture
	// group is the field value.
	Pattern *regexp.Regexp

	// Decode percent/plus-decodes the value. Only set for variants whose
	// embedded fields are known to be so-encoded; values sourced from meta
	// or open-graph tags are never re-decoded.
	Decode bool
}

// Literal returns a source reading the first present key from the embedded
// literal.
func Literal(keys ...string) FieldSource {
	return FieldSource{Kind: SourceLiteral, Keys: keys}
}

// LiteralDecoded is Literal with percent/plus decoding applied.
func LiteralDecoded(keys ...string) FieldSource {
	return FieldSource{Kind: SourceLiteral, Keys: keys, Decode: true}
}

// Meta returns a source reading the first matching meta tag.
func Meta(names ...string) FieldSource {
	return FieldSource{Kind: SourceMeta, Keys: names}
}

// Pattern returns a source applying expr to the raw page text. expr must
// contain exactly one capture group and must compile; variant tables are
// static configuration, so a bad expression is a programming error.
func Pattern(expr string) FieldSource {
	return FieldSource{Kind: SourcePattern, Pattern: regexp.MustCompile(expr)}
}

// PatternDecoded is Pattern with percent/plus decoding applied.
func PatternDecoded(expr string) FieldSource {
	return FieldSource{Kind: SourcePattern, Pattern: regexp.MustCompile(expr), Decode: true}
}

// OpenGraph returns a source reading the og:<property> tag.
func OpenGraph(property string) FieldSource {
	return FieldSource{Kind: SourceOpenGraph, Keys: []string{property}}
}

// URLID returns a source yielding the id captured from the URL.
func URLID() FieldSource {
	return FieldSource{Kind: SourceURLID}
}

// FieldChain is an ordered fallback chain for one canonical field. Sources
// are attempted in order; the first non-empty value wins.
type FieldChain []FieldSource

// Fields holds the fallback chains for every canonical field of a variant.
// A nil chain means the field is never resolved for that variant.
type Fields struct {
	ID          FieldChain
	MediaURL    FieldChain
	Title       FieldChain
	Description FieldChain
	Duration    FieldChain
	UploadDate  FieldChain
	Thumbnail   FieldChain
}

// Variant describes one site family's embedding convention: how to recognize
// its URLs, where the embedded literal sits in the page, and how each
// canonical field is resolved. Variants are immutable configuration,
// constructed once at process start.
type Variant struct {
	// Name identifies the variant (e.g., "ndtv-sports").
	Name string

	// URLPattern matches the host and path shape of the variant's video
	// pages. Its first capture group is the numeric video identifier.
	// Across all configured variants, at most one pattern may match any
	// given URL; routing correctness depends on this mutual exclusivity.
	URLPattern *regexp.Regexp

	// BoundaryStart and BoundaryEnd delimit the embedded object literal
	// within the page text. Both nil for variants that operate purely on
	// field-level patterns.
	BoundaryStart *regexp.Regexp
	BoundaryEnd   *regexp.Regexp

	// FoldNewlines replaces newlines with spaces before marker search, for
	// sites that split the player statement across lines.
	FoldNewlines bool

	Fields Fields
}

// Match pairs a routed variant with the identifier captured from the URL.
type Match struct {
	Variant *Variant
	ID      string
}

// Router selects the variant responsible for an input URL.
type Router interface {
	// Route returns the single matching variant, or an ENOVARIANT error when
	// the URL belongs to no configured site family. It is total: malformed
	// URLs route to the error, never to a fault.
	Route(url string) (*Match, error)
}
