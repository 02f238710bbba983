// Package ndtv configures extraction variants for the NDTV family of sites.
// Every property embeds the same player-data object literal, but each one
// wraps it in slightly different markers and names its fields differently;
// the table below captures those conventions as data so that adding a
// property is a configuration change, not new logic.
package ndtv

import (
	"regexp"

	"github.com/fwojciec/vidmeta"
)

// videoPath matches the path shape shared by every property's video pages
// and captures the numeric video id.
const videoPath = `/(?:[^/]+/)*videos?/?(?:[^/]+/)*[^/?^&]+-(\d+)`

// Every property resolves the upload date and thumbnail the same way.
var (
	uploadDate = vidmeta.FieldChain{
		vidmeta.Meta("publish-date", "uploadDate"),
		vidmeta.Pattern(`datePublished"\s*:\s*"([^"]+)"`),
	}
	thumbnail = vidmeta.FieldChain{vidmeta.OpenGraph("image")}
	videoID   = vidmeta.FieldChain{vidmeta.Literal("id"), vidmeta.URLID()}

	// mediaPattern recovers the media URL from raw page text when the
	// embedded literal is missing or corrupt.
	mediaPattern = vidmeta.Pattern(`"media(?:_mp4)?"\s*:\s*"([^"]+)"`)
)

func hosts(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`https?://` + pattern + `\.ndtv\.com` + videoPath)
}

// Variants returns the configured NDTV site variants in routing order. Host
// patterns are mutually exclusive: no URL is matched by more than one
// variant.
func Variants() []vidmeta.Variant {
	return []vidmeta.Variant{
		{
			Name:          "ndtv",
			URLPattern:    hosts(`(?:www|profit)`),
			BoundaryStart: regexp.MustCompile(`__html5playerdata\s*=\s*`),
			BoundaryEnd:   regexp.MustCompile(`,\s*__right_margin_top`),
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("media_mp4", "media"), mediaPattern},
				Title:    vidmeta.FieldChain{vidmeta.Literal("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.Literal("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("dur")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			Name:          "ndtv-khabar",
			URLPattern:    hosts(`khabar`),
			BoundaryStart: regexp.MustCompile(`__html5playerdata\s*=\s*`),
			BoundaryEnd:   regexp.MustCompile(`\s*;\s*if`),
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("media_mp4", "media"), mediaPattern},
				Title:    vidmeta.FieldChain{vidmeta.Literal("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.Literal("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("dur")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			// auto.ndtv.com passes the literal as a function argument and
			// percent/plus-encodes its descriptive fields.
			Name:          "ndtv-auto",
			URLPattern:    hosts(`auto`),
			BoundaryStart: regexp.MustCompile(`videoPlayerScript\(`),
			BoundaryEnd:   regexp.MustCompile(`\);`),
			FoldNewlines:  true,
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("filePath"), vidmeta.Pattern(`"filePath"\s*:\s*"([^"]+)"`)},
				Title:    vidmeta.FieldChain{vidmeta.LiteralDecoded("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.LiteralDecoded("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("duration")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			Name:          "ndtv-movies",
			URLPattern:    hosts(`(?:movies|food|swirlster)`),
			BoundaryStart: regexp.MustCompile(`__html5playerdata\s*=\s*`),
			BoundaryEnd:   regexp.MustCompile(`,\s*__html5`),
			FoldNewlines:  true,
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("media"), mediaPattern},
				Title:    vidmeta.FieldChain{vidmeta.LiteralDecoded("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.LiteralDecoded("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("dur")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			Name:          "ndtv-sports",
			URLPattern:    hosts(`sports`),
			BoundaryStart: regexp.MustCompile(`__html5playerdata\s*=\s*`),
			BoundaryEnd:   regexp.MustCompile(`\s*var\s+__by_line`),
			FoldNewlines:  true,
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("media"), mediaPattern},
				Title:    vidmeta.FieldChain{vidmeta.Literal("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.Literal("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("dur")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			Name:          "ndtv-gadgets",
			URLPattern:    hosts(`gadgets`),
			BoundaryStart: regexp.MustCompile(`__html5playerdata\s*=\s*`),
			BoundaryEnd:   regexp.MustCompile(`;\s*var\s*__right`),
			FoldNewlines:  true,
			Fields: vidmeta.Fields{
				ID:       videoID,
				MediaURL: vidmeta.FieldChain{vidmeta.Literal("media"), mediaPattern},
				Title:    vidmeta.FieldChain{vidmeta.Literal("title"), vidmeta.OpenGraph("title")},
				Description: vidmeta.FieldChain{
					vidmeta.Literal("description"),
					vidmeta.OpenGraph("description"),
				},
				Duration:   vidmeta.FieldChain{vidmeta.Literal("dur")},
				UploadDate: uploadDate,
				Thumbnail:  thumbnail,
			},
		},
		{
			// doctor.ndtv.com's literal contains boolean expressions
			// ("rtmp": true / false) that no strict parse survives, so this
			// variant skips the literal pipeline and reads fields straight
			// off the raw page.
			Name:       "ndtv-doctor",
			URLPattern: hosts(`doctor`),
			Fields: vidmeta.Fields{
				ID:       vidmeta.FieldChain{vidmeta.URLID()},
				MediaURL: vidmeta.FieldChain{vidmeta.Pattern(`"media"\s*:\s*"([^"]+)"`)},
				Title: vidmeta.FieldChain{
					vidmeta.PatternDecoded(`"title"\s*:\s*"([^"]+)"`),
					vidmeta.OpenGraph("title"),
				},
				Description: vidmeta.FieldChain{vidmeta.OpenGraph("description")},
				Duration:    vidmeta.FieldChain{vidmeta.Pattern(`"dur"\s*:\s*"([^"]+)"`)},
				UploadDate:  uploadDate,
				Thumbnail:   thumbnail,
			},
		},
	}
}
