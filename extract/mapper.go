package extract

import (
	"strconv"

	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/normalize"
)

// resolve walks a field's fallback chain and returns the first non-empty
// value. data may be nil when the embedded literal was missing or failed to
// parse; literal sources are then skipped and the rest of the chain still
// runs.
func resolve(chain vidmeta.FieldChain, data map[string]any, p *page, urlID string) string {
	for _, src := range chain {
		var val string
		switch src.Kind {
		case vidmeta.SourceLiteral:
			val = literalString(data, src.Keys)
		case vidmeta.SourceMeta:
			val = p.meta(src.Keys...)
		case vidmeta.SourcePattern:
			if m := src.Pattern.FindStringSubmatch(p.text); len(m) > 1 {
				val = m[1]
			}
		case vidmeta.SourceOpenGraph:
			val = p.openGraph(src.Keys[0])
		case vidmeta.SourceURLID:
			val = urlID
		}
		if val == "" {
			continue
		}
		if src.Decode {
			val = normalize.UnquotePlus(val)
		}
		return val
	}
	return ""
}

// literalString reads the first present key from the literal data and
// renders its scalar value as a string. Missing keys, empty strings, and
// non-scalar values are skipped.
func literalString(data map[string]any, keys []string) string {
	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}
