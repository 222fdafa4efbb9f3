package catalog

import (
	"sort"

	"mlmusic/model"
)

// TopTracks returns the n highest tracks by play count. Ties break by
// publication time descending, then id descending, so the ranking is
// deterministic. The input slice is not modified.
func TopTracks(tracks []model.Track, n int) []model.Track {
	ranked := make([]model.Track, len(tracks))
	copy(ranked, tracks)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.PlayCount != b.PlayCount {
			return a.PlayCount > b.PlayCount
		}
		if !a.PublicationTime.Equal(b.PublicationTime) {
			return a.PublicationTime.After(b.PublicationTime)
		}
		return a.ID > b.ID
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
