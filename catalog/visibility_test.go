package catalog

import (
	"testing"

	"mlmusic/model"

	"github.com/stretchr/testify/assert"
)

func TestCanViewPlaylist(t *testing.T) {
	playlist := func(ownerID int64, public bool, addedIDs ...int64) *model.Playlist {
		p := &model.Playlist{OwnerID: ownerID, IsPublic: public}
		for _, id := range addedIDs {
			p.AddedUsers = append(p.AddedUsers, model.User{ID: id})
		}
		return p
	}

	cases := []struct {
		name     string
		viewerID int64
		playlist *model.Playlist
		want     bool
	}{
		{"anonymous sees nothing, even public", 0, playlist(1, true), false},
		{"owner sees private", 1, playlist(1, false), true},
		{"added user sees private", 2, playlist(1, false, 2, 3), true},
		{"stranger blocked from private", 4, playlist(1, false, 2, 3), false},
		{"authenticated stranger sees public", 4, playlist(1, true), true},
		{"owner sees public", 1, playlist(1, true), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanViewPlaylist(c.viewerID, c.playlist))
		})
	}
}

func TestPublicationPredicates(t *testing.T) {
	assert.True(t, IsTrackPublished(&model.Track{IsPublished: model.TrackPublished}))
	assert.False(t, IsTrackPublished(&model.Track{IsPublished: model.TrackUnreleased}))
	assert.True(t, IsAlbumPublished(&model.Album{IsPublished: model.AlbumPublished}))
	assert.False(t, IsAlbumPublished(&model.Album{IsPublished: model.AlbumUnreleased}))
}
