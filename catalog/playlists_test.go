package catalog

import (
	"context"
	"testing"

	"mlmusic/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaylistValidation(t *testing.T) {
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			ExistsByOwnerAndNameFn: func(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
				return name == "Taken", nil
			},
		},
	})
	ctx := context.Background()

	_, err := engine.CreatePlaylist(ctx, 1, PlaylistInput{Name: "  ", TrackIDs: []int64{1}})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = engine.CreatePlaylist(ctx, 1, PlaylistInput{Name: "Empty"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = engine.CreatePlaylist(ctx, 1, PlaylistInput{Name: "Taken", TrackIDs: []int64{1}})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCreatePlaylistDerivesSlugAndExcludesOwner(t *testing.T) {
	var created *model.Playlist
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			ExistsByOwnerAndNameFn: func(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
				return false, nil
			},
			CreateFn: func(ctx context.Context, playlist *model.Playlist) error {
				created = playlist
				return nil
			},
		},
	})

	playlist, err := engine.CreatePlaylist(context.Background(), 1, PlaylistInput{
		Name:         "Road Trip",
		TrackIDs:     []int64{10, 11},
		AddedUserIDs: []int64{1, 2, 3},
		IsPublic:     true,
	})
	require.NoError(t, err)
	require.Same(t, playlist, created)
	assert.Equal(t, "road-trip", playlist.Slug)
	assert.Equal(t, int64(1), playlist.OwnerID)

	// Adding yourself to your own playlist is a no-op.
	addedIDs := make([]int64, 0, len(playlist.AddedUsers))
	for _, u := range playlist.AddedUsers {
		addedIDs = append(addedIDs, u.ID)
	}
	assert.Equal(t, []int64{2, 3}, addedIDs)
}

func TestUpdatePlaylistOwnerOnly(t *testing.T) {
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
				return &model.Playlist{ID: id, OwnerID: 1, Name: "Road Trip", Slug: "road-trip"}, nil
			},
		},
	})

	_, err := engine.UpdatePlaylist(context.Background(), 2, 5, PlaylistInput{
		Name:     "Hijacked",
		TrackIDs: []int64{1},
	})
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestUpdatePlaylistKeepsSlugOnRename(t *testing.T) {
	var saved *model.Playlist
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
				return &model.Playlist{ID: id, OwnerID: 1, Name: "Road Trip", Slug: "road-trip"}, nil
			},
			ExistsByOwnerAndNameFn: func(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
				return false, nil
			},
			UpdateFn: func(ctx context.Context, playlist *model.Playlist) error {
				saved = playlist
				return nil
			},
		},
	})

	playlist, err := engine.UpdatePlaylist(context.Background(), 1, 5, PlaylistInput{
		Name:     "Summer 2026",
		TrackIDs: []int64{10},
	})
	require.NoError(t, err)
	require.Same(t, playlist, saved)
	assert.Equal(t, "Summer 2026", playlist.Name)
	assert.Equal(t, "road-trip", playlist.Slug, "a playlist slug is fixed at creation")
}

func TestUpdatePlaylistDuplicateNameExcludesSelf(t *testing.T) {
	var gotExcludeID int64
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
				return &model.Playlist{ID: id, OwnerID: 1, Name: "Road Trip", Slug: "road-trip"}, nil
			},
			ExistsByOwnerAndNameFn: func(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
				gotExcludeID = excludeID
				return false, nil
			},
			UpdateFn: func(ctx context.Context, playlist *model.Playlist) error { return nil },
		},
	})

	_, err := engine.UpdatePlaylist(context.Background(), 1, 5, PlaylistInput{
		Name:     "Road Trip",
		TrackIDs: []int64{10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotExcludeID, "keeping your own name must not count as a duplicate")
}

func TestDeletePlaylistOwnerOnly(t *testing.T) {
	deleted := false
	repo := &fakePlaylistRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*model.Playlist, error) {
			return &model.Playlist{ID: id, OwnerID: 1}, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	engine := NewEngine(Deps{Playlists: repo})
	ctx := context.Background()

	err := engine.DeletePlaylist(ctx, 2, 5)
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.False(t, deleted)

	require.NoError(t, engine.DeletePlaylist(ctx, 1, 5))
	assert.True(t, deleted)
}

func TestPlaylistPageVisibility(t *testing.T) {
	engine := NewEngine(Deps{
		Playlists: &fakePlaylistRepo{
			GetBySlugFn: func(ctx context.Context, slug string) (*model.Playlist, error) {
				return &model.Playlist{
					ID:         5,
					OwnerID:    1,
					Slug:       slug,
					AddedUsers: []model.User{{ID: 2}},
				}, nil
			},
		},
	})
	ctx := context.Background()

	_, err := engine.PlaylistPage(ctx, 0, "road-trip")
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = engine.PlaylistPage(ctx, 3, "road-trip")
	assert.ErrorIs(t, err, model.ErrForbidden)

	playlist, err := engine.PlaylistPage(ctx, 2, "road-trip")
	require.NoError(t, err)
	assert.Equal(t, int64(5), playlist.ID)
}
