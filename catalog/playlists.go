package catalog

import (
	"context"
	"fmt"
	"strings"

	"mlmusic/model"
	"mlmusic/storage"
)

// PlaylistInput carries the fields for creating or updating a playlist.
type PlaylistInput struct {
	Name         string
	TrackIDs     []int64
	AddedUserIDs []int64
	IsPublic     bool
	Logo         *MediaFile
}

func userSet(ids []int64, excludeID int64) []model.User {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if id == excludeID {
			continue
		}
		users = append(users, model.User{ID: id})
	}
	return users
}

// CreatePlaylist creates a playlist for the owner. The slug is derived
// once here and never recomputed afterwards, so shared links keep
// working across renames. A playlist needs at least one track, and an
// owner cannot have two playlists with the same name.
func (e *Engine) CreatePlaylist(ctx context.Context, ownerID int64, in PlaylistInput) (*model.Playlist, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", model.ErrValidation)
	}
	if len(in.TrackIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one track", model.ErrValidation)
	}

	taken, err := e.playlists.ExistsByOwnerAndName(ctx, ownerID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: you already have a playlist named %q", model.ErrValidation, name)
	}

	logoPath, err := e.upload(ctx, storage.MediaPlaylistLogo, in.Logo)
	if err != nil {
		return nil, err
	}

	playlist := &model.Playlist{
		Name:       name,
		Slug:       Slugify(name),
		OwnerID:    ownerID,
		AddedUsers: userSet(in.AddedUserIDs, ownerID),
		Tracks:     trackSet(in.TrackIDs),
		IsPublic:   in.IsPublic,
		LogoPath:   logoPath,
	}
	if err := e.playlists.Create(ctx, playlist); err != nil {
		e.discard(ctx, logoPath)
		return nil, err
	}
	return playlist, nil
}

// UpdatePlaylist updates a playlist on behalf of the viewer. Only the
// owner may update; the slug stays whatever creation derived.
func (e *Engine) UpdatePlaylist(ctx context.Context, viewerID, id int64, in PlaylistInput) (*model.Playlist, error) {
	playlist, err := e.playlists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != viewerID {
		return nil, fmt.Errorf("%w: only the owner may edit a playlist", model.ErrForbidden)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", model.ErrValidation)
	}
	if len(in.TrackIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one track", model.ErrValidation)
	}

	taken, err := e.playlists.ExistsByOwnerAndName(ctx, viewerID, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: you already have a playlist named %q", model.ErrValidation, name)
	}

	playlist.Name = name
	playlist.IsPublic = in.IsPublic
	playlist.Tracks = trackSet(in.TrackIDs)
	playlist.AddedUsers = userSet(in.AddedUserIDs, viewerID)
	if in.Logo != nil {
		logoPath, err := e.upload(ctx, storage.MediaPlaylistLogo, in.Logo)
		if err != nil {
			return nil, err
		}
		playlist.LogoPath = logoPath
	}

	if err := e.playlists.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes a playlist on behalf of the viewer. Only the
// owner may delete; the removal takes the membership rows with it and
// nothing else.
func (e *Engine) DeletePlaylist(ctx context.Context, viewerID, id int64) error {
	playlist, err := e.playlists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist.OwnerID != viewerID {
		return fmt.Errorf("%w: only the owner may delete a playlist", model.ErrForbidden)
	}
	return e.playlists.Delete(ctx, id)
}

// PlaylistPage returns a playlist by slug if the viewer may see it.
func (e *Engine) PlaylistPage(ctx context.Context, viewerID int64, slug string) (*model.Playlist, error) {
	playlist, err := e.playlists.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !CanViewPlaylist(viewerID, playlist) {
		return nil, fmt.Errorf("%w: playlist %q is private", model.ErrForbidden, slug)
	}
	return playlist, nil
}

// VisiblePlaylists returns every playlist the viewer may see: owned,
// added to, or public.
func (e *Engine) VisiblePlaylists(ctx context.Context, viewerID int64) ([]model.Playlist, error) {
	return e.playlists.ListVisibleTo(ctx, viewerID)
}

// UserPlaylists groups the playlists shown in a user's sidebar.
type UserPlaylists struct {
	Owned []model.Playlist
	Added []model.Playlist
}

// PlaylistsOf returns the playlists a user owns and the ones other
// owners added them to.
func (e *Engine) PlaylistsOf(ctx context.Context, userID int64) (*UserPlaylists, error) {
	owned, err := e.playlists.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	added, err := e.playlists.ListAddedTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserPlaylists{Owned: owned, Added: added}, nil
}
