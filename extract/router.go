package extract

import "github.com/fwojciec/vidmeta"

var _ vidmeta.Router = (*Router)(nil)

// Router selects a variant by URL. Variants are evaluated in declared order
// and the first match wins; the configured table must keep URL patterns
// mutually exclusive so that order never decides between two live matches.
type Router struct {
	variants []vidmeta.Variant
}

// NewRouter creates a Router over the given variants.
func NewRouter(variants []vidmeta.Variant) *Router {
	return &Router{variants: variants}
}

// Route returns the matching variant and the id captured from the URL, or an
// ENOVARIANT error when no pattern matches. Pattern matching on an arbitrary
// string cannot fault, so Route is total over malformed input.
func (r *Router) Route(url string) (*vidmeta.Match, error) {
	for i := range r.variants {
		v := &r.variants[i]
		m := v.URLPattern.FindStringSubmatch(url)
		if m == nil {
			continue
		}
		match := &vidmeta.Match{Variant: v}
		if len(m) > 1 {
			match.ID = m[1]
		}
		return match, nil
	}
	return nil, vidmeta.Errorf(vidmeta.ENOVARIANT, "no variant matches %q", url)
}
