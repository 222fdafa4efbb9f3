package catalog

import "github.com/gosimple/slug"

// Slugify derives the URL identifier for a human-readable name:
// transliterated to ASCII, lower-cased, with whitespace and punctuation
// runs collapsed to single separators. Deterministic and idempotent, so
// re-saving an unchanged name never moves a page.
func Slugify(name string) string {
	return slug.Make(name)
}
