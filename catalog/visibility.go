package catalog

import "mlmusic/model"

// Visibility predicates. They are deliberately stand-alone functions so
// every call site states what it filters by instead of relying on a
// default query scope.

// IsTrackPublished reports whether a track may appear in public listings.
func IsTrackPublished(t *model.Track) bool {
	return t.IsPublished == model.TrackPublished
}

// IsAlbumPublished reports whether an album may appear in public listings.
func IsAlbumPublished(a *model.Album) bool {
	return a.IsPublished == model.AlbumPublished
}

// CanViewPlaylist reports whether the viewer may see a playlist: the
// owner always, users the owner added always, anyone authenticated when
// the playlist is public. Anonymous viewers (id 0) see nothing.
// AddedUsers must be loaded on the playlist.
func CanViewPlaylist(viewerID int64, p *model.Playlist) bool {
	if viewerID == 0 {
		return false
	}
	if p.OwnerID == viewerID {
		return true
	}
	for _, u := range p.AddedUsers {
		if u.ID == viewerID {
			return true
		}
	}
	return p.IsPublic
}
