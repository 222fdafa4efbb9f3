package catalog

import (
	"context"
	"fmt"
	"strings"

	"mlmusic/model"
	"mlmusic/storage"
)

// ArtistInput carries the fields for creating or updating an artist.
type ArtistInput struct {
	Name    string
	GenreID int64
	Logo    *MediaFile
}

// CreateArtist creates an artist with a slug derived from its name.
// Artists start confirmed; moderation can revoke that later.
func (e *Engine) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: artist name is required", model.ErrValidation)
	}
	if in.GenreID == 0 {
		return nil, fmt.Errorf("%w: artist genre is required", model.ErrValidation)
	}

	logoPath, err := e.upload(ctx, storage.MediaArtistLogo, in.Logo)
	if err != nil {
		return nil, err
	}

	artist := &model.Artist{
		Name:        name,
		Slug:        Slugify(name),
		LogoPath:    logoPath,
		IsConfirmed: model.ArtistConfirmed,
		GenreID:     in.GenreID,
	}
	if err := e.artists.Create(ctx, artist); err != nil {
		e.discard(ctx, logoPath)
		return nil, err
	}
	return artist, nil
}

// RenameArtist renames an artist and recomputes its slug, moving the
// artist page to the new address.
func (e *Engine) RenameArtist(ctx context.Context, id int64, name string) (*model.Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: artist name is required", model.ErrValidation)
	}

	artist, err := e.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	artist.Name = name
	artist.Slug = Slugify(name)
	if err := e.artists.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// DeleteArtist removes an artist. The delete is refused by the store
// while tracks or albums still reference the artist.
func (e *Engine) DeleteArtist(ctx context.Context, id int64) error {
	return e.artists.Delete(ctx, id)
}

// Subscribe records one subscription to an artist. Counters only ever
// move up.
func (e *Engine) Subscribe(ctx context.Context, artistID int64) error {
	return e.artists.IncrementSubCount(ctx, artistID)
}

// SetArtistConfirmed bulk-applies a confirmation status. Idempotent:
// re-confirming a confirmed artist changes nothing.
func (e *Engine) SetArtistConfirmed(ctx context.Context, ids []int64, status model.ArtistStatus) (int64, error) {
	return e.artists.SetConfirmed(ctx, ids, status)
}

// ConfirmedArtists lists artists that passed moderation.
func (e *Engine) ConfirmedArtists(ctx context.Context) ([]model.Artist, error) {
	return e.artists.ListConfirmed(ctx)
}
