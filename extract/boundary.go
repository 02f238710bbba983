// Package extract implements the site-agnostic extraction pipeline: route a
// URL to its variant, cut the embedded object literal out of the page text,
// normalize it, and resolve canonical fields through the variant's fallback
// chains.
package extract

import (
	"regexp"

	"github.com/fwojciec/vidmeta"
)

// Between returns the text strictly between the first match of start and the
// first match of end after it.
//
// Matching is non-greedy on the end marker: the shortest span to the first
// end-marker occurrence wins. A literal that legitimately contains the
// end-marker text therefore yields a truncated span; the caller must
// validate the result (the literal normalizer rejects a corrupt span) rather
// than trust it. When either marker is absent the result is an EBOUNDARY
// error, which the engine treats as soft.
func Between(text string, start, end *regexp.Regexp) (string, error) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", vidmeta.Errorf(vidmeta.EBOUNDARY, "start marker %q not found", start)
	}
	rest := text[loc[1]:]
	endLoc := end.FindStringIndex(rest)
	if endLoc == nil {
		return "", vidmeta.Errorf(vidmeta.EBOUNDARY, "end marker %q not found", end)
	}
	return rest[:endLoc[0]], nil
}
