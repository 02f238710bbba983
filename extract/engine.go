package extract

import (
	"strings"

	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/jsliteral"
	"github.com/fwojciec/vidmeta/normalize"
)

// descriptionSuffix is marketing boilerplate some properties append to their
// open-graph descriptions.
const descriptionSuffix = " (Read more)"

var _ vidmeta.Extractor = (*Engine)(nil)

// Engine is the extraction pipeline. It is stateless across calls: one URL
// plus one document in, one record or coded error out, with no shared
// mutable state, so concurrent calls need no coordination.
type Engine struct {
	router vidmeta.Router
}

// NewEngine creates an Engine routing through the given router.
func NewEngine(router vidmeta.Router) *Engine {
	return &Engine{router: router}
}

// Extract produces the canonical record for a fetched document.
//
// A missing boundary or an unparseable literal is soft: the field chains
// still run against the raw page. Only ENOVARIANT (unroutable URL) and
// EMISSING (no strategy resolved id or media URL) surface to the caller.
func (e *Engine) Extract(doc vidmeta.Document) (*vidmeta.Record, error) {
	match, err := e.router.Route(doc.URL)
	if err != nil {
		return nil, err
	}
	v := match.Variant

	text := doc.HTML
	if v.FoldNewlines {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	p := newPage(text)

	var data map[string]any
	if v.BoundaryStart != nil && v.BoundaryEnd != nil {
		if raw, err := Between(text, v.BoundaryStart, v.BoundaryEnd); err == nil {
			data, _ = jsliteral.Normalize(raw)
		}
	}

	rec := &vidmeta.Record{
		ID:              resolve(v.Fields.ID, data, p, match.ID),
		MediaURL:        resolve(v.Fields.MediaURL, data, p, match.ID),
		Title:           resolve(v.Fields.Title, data, p, match.ID),
		Description:     resolve(v.Fields.Description, data, p, match.ID),
		DurationSeconds: normalize.Duration(resolve(v.Fields.Duration, data, p, match.ID)),
		UploadDate:      normalize.Date(resolve(v.Fields.UploadDate, data, p, match.ID)),
		ThumbnailURL:    resolve(v.Fields.Thumbnail, data, p, match.ID),
	}
	if rec.Description != "" {
		rec.Description = normalize.CleanHTML(normalize.RemoveEnd(rec.Description, descriptionSuffix))
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
