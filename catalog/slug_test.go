package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Rock":           "rock",
		"Noize MC":       "noize-mc",
		"Greatest Hits!": "greatest-hits",
		"  Drum & Bass ": "drum-and-bass",
		"Кино":           "kino",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "Slugify(%q)", name)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, name := range []string{"Noize MC", "Кино", "already-a-slug"} {
		once := Slugify(name)
		assert.Equal(t, once, Slugify(once))
	}
}
