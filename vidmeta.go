// Package vidmeta extracts structured video metadata (identifier, media URL,
// title, description, duration, upload date, thumbnail) from already-fetched
// HTML documents belonging to site families that embed the metadata inside a
// JavaScript object literal, using slightly different surrounding markers per
// property.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named after
// their primary dependency or concern (e.g., extract/, sqlite/, http/).
package vidmeta
