package mock

import "github.com/fwojciec/vidmeta"

var _ vidmeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vidmeta.Extractor.
type Extractor struct {
	ExtractFn func(doc vidmeta.Document) (*vidmeta.Record, error)
}

func (e *Extractor) Extract(doc vidmeta.Document) (*vidmeta.Record, error) {
	return e.ExtractFn(doc)
}
