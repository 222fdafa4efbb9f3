package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mlmusic/model"
	"mlmusic/storage"
)

// AlbumInput carries the fields for creating or updating an album.
type AlbumInput struct {
	Name            string
	MainAuthorID    int64
	GenreID         int64
	TrackIDs        []int64
	PublicationTime time.Time // zero means now
	Status          *model.AlbumStatus
	Logo            *MediaFile
}

func trackSet(ids []int64) []model.Track {
	tracks := make([]model.Track, 0, len(ids))
	for _, id := range ids {
		tracks = append(tracks, model.Track{ID: id})
	}
	return tracks
}

// CreateAlbum creates an album. The slug is derived from the name and
// only needs to be unique among the author's albums; two authors can both
// have a "Greatest Hits".
func (e *Engine) CreateAlbum(ctx context.Context, in AlbumInput) (*model.Album, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: album name is required", model.ErrValidation)
	}
	if in.MainAuthorID == 0 {
		return nil, fmt.Errorf("%w: album main author is required", model.ErrValidation)
	}
	if in.GenreID == 0 {
		return nil, fmt.Errorf("%w: album genre is required", model.ErrValidation)
	}

	logoPath, err := e.upload(ctx, storage.MediaAlbumLogo, in.Logo)
	if err != nil {
		return nil, err
	}

	publicationTime := in.PublicationTime
	if publicationTime.IsZero() {
		publicationTime = time.Now()
	}
	status := model.AlbumPublished
	if in.Status != nil {
		status = *in.Status
	}

	album := &model.Album{
		Name:            name,
		Slug:            Slugify(name),
		MainAuthorID:    in.MainAuthorID,
		GenreID:         in.GenreID,
		Tracks:          trackSet(in.TrackIDs),
		PublicationTime: publicationTime,
		LogoPath:        logoPath,
		IsPublished:     status,
	}
	if err := e.albums.Create(ctx, album); err != nil {
		e.discard(ctx, logoPath)
		return nil, err
	}

	e.invalidateFeed(ctx)
	return album, nil
}

// UpdateAlbum updates an album. Renames recompute the slug from the new
// name, like genres and artists.
func (e *Engine) UpdateAlbum(ctx context.Context, id int64, in AlbumInput) (*model.Album, error) {
	album, err := e.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		album.Name = name
		album.Slug = Slugify(name)
	}
	if in.GenreID != 0 {
		album.GenreID = in.GenreID
	}
	if in.TrackIDs != nil {
		album.Tracks = trackSet(in.TrackIDs)
	}
	if !in.PublicationTime.IsZero() {
		album.PublicationTime = in.PublicationTime
	}
	if in.Status != nil {
		album.IsPublished = *in.Status
	}
	if in.Logo != nil {
		logoPath, err := e.upload(ctx, storage.MediaAlbumLogo, in.Logo)
		if err != nil {
			return nil, err
		}
		album.LogoPath = logoPath
	}

	if err := e.albums.Update(ctx, album); err != nil {
		return nil, err
	}

	e.invalidateFeed(ctx)
	return album, nil
}

// DeleteAlbum removes an album and its track memberships; the tracks
// survive.
func (e *Engine) DeleteAlbum(ctx context.Context, id int64) error {
	if err := e.albums.Delete(ctx, id); err != nil {
		return err
	}
	e.invalidateFeed(ctx)
	return nil
}

// SetAlbumStatus bulk-publishes or bulk-unpublishes albums. Idempotent.
func (e *Engine) SetAlbumStatus(ctx context.Context, ids []int64, status model.AlbumStatus) (int64, error) {
	n, err := e.albums.SetStatus(ctx, ids, status)
	if err != nil {
		return n, err
	}
	e.invalidateFeed(ctx)
	return n, nil
}
