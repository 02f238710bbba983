package vidmeta

// Document is one already-fetched HTML page. The caller owns acquisition
// (network transport, retries, caching); the core only ever reads it.
type Document struct {
	// URL the document was fetched from. Routing keys off it.
	URL string

	// HTML is the raw page text. It is treated as free-form text, not a
	// parsed tree, by the boundary extractor.
	HTML string
}
