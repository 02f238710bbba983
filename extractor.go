package vidmeta

// Extractor produces a canonical record from a fetched document.
type Extractor interface {
	// Extract routes the document's URL to a site variant and resolves the
	// canonical fields through that variant's fallback chains.
	//
	// It returns either a record with ID and MediaURL populated, or a coded
	// error: ENOVARIANT when the URL belongs to no known site family,
	// EMISSING when no strategy yields a required field. It never returns a
	// record with required fields empty.
	Extract(doc Document) (*Record, error)
}
