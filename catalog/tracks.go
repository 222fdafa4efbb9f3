package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mlmusic/model"
	"mlmusic/storage"
)

// TrackInput carries the fields for creating or updating a track.
// Duration is never an input; it is derived from the audio file.
type TrackInput struct {
	Name              string
	MainAuthorID      int64
	FeaturedAuthorIDs []int64
	GenreID           int64
	PublicationTime   time.Time // zero means now
	Lyrics            string
	Status            *model.TrackStatus // nil keeps the default (published)
	Logo              *MediaFile
	Audio             *MediaFile
}

func featuredSet(ids []int64) []model.Artist {
	artists := make([]model.Artist, 0, len(ids))
	for _, id := range ids {
		artists = append(artists, model.Artist{ID: id})
	}
	return artists
}

// CreateTrack creates a track. When an audio file is attached its play
// length is probed first; a probe failure aborts the create so a wrong
// duration is never persisted. Media uploads complete before the row is
// written and are removed again if the write fails.
func (e *Engine) CreateTrack(ctx context.Context, in TrackInput) (*model.Track, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: track name is required", model.ErrValidation)
	}
	if in.MainAuthorID == 0 {
		return nil, fmt.Errorf("%w: track main author is required", model.ErrValidation)
	}
	if in.GenreID == 0 {
		return nil, fmt.Errorf("%w: track genre is required", model.ErrValidation)
	}

	duration := "0"
	if in.Audio != nil {
		seconds, err := e.prober.Probe(ctx, in.Audio.Path)
		if err != nil {
			return nil, err
		}
		duration = FormatDuration(seconds)
	}

	logoPath, err := e.upload(ctx, storage.MediaTrackLogo, in.Logo)
	if err != nil {
		return nil, err
	}
	audioPath, err := e.upload(ctx, storage.MediaTrackAudio, in.Audio)
	if err != nil {
		e.discard(ctx, logoPath)
		return nil, err
	}

	publicationTime := in.PublicationTime
	if publicationTime.IsZero() {
		publicationTime = time.Now()
	}
	status := model.TrackPublished
	if in.Status != nil {
		status = *in.Status
	}

	track := &model.Track{
		Name:            name,
		MainAuthorID:    in.MainAuthorID,
		FeaturedAuthors: featuredSet(in.FeaturedAuthorIDs),
		GenreID:         in.GenreID,
		PublicationTime: publicationTime,
		LogoPath:        logoPath,
		AudioPath:       audioPath,
		Lyrics:          in.Lyrics,
		Duration:        duration,
		IsPublished:     status,
	}
	if err := e.tracks.Create(ctx, track); err != nil {
		e.discard(ctx, logoPath)
		e.discard(ctx, audioPath)
		return nil, err
	}

	e.invalidateFeed(ctx)
	return track, nil
}

// UpdateTrack updates a track. The duration is recomputed only when a
// new audio file is attached; without one it keeps its previous value.
func (e *Engine) UpdateTrack(ctx context.Context, id int64, in TrackInput) (*model.Track, error) {
	track, err := e.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		track.Name = name
	}
	if in.MainAuthorID != 0 {
		track.MainAuthorID = in.MainAuthorID
	}
	if in.GenreID != 0 {
		track.GenreID = in.GenreID
	}
	if in.FeaturedAuthorIDs != nil {
		track.FeaturedAuthors = featuredSet(in.FeaturedAuthorIDs)
	}
	if !in.PublicationTime.IsZero() {
		track.PublicationTime = in.PublicationTime
	}
	if in.Lyrics != "" {
		track.Lyrics = in.Lyrics
	}
	if in.Status != nil {
		track.IsPublished = *in.Status
	}

	if in.Audio != nil {
		seconds, err := e.prober.Probe(ctx, in.Audio.Path)
		if err != nil {
			// Keep the stored duration; the caller decides whether to
			// retry or reject the upload.
			return nil, err
		}
		track.Duration = FormatDuration(seconds)
	}

	var logoPath, audioPath string
	if in.Logo != nil {
		if logoPath, err = e.upload(ctx, storage.MediaTrackLogo, in.Logo); err != nil {
			return nil, err
		}
		track.LogoPath = logoPath
	}
	if in.Audio != nil {
		if audioPath, err = e.upload(ctx, storage.MediaTrackAudio, in.Audio); err != nil {
			e.discard(ctx, logoPath)
			return nil, err
		}
		track.AudioPath = audioPath
	}

	if err := e.tracks.Update(ctx, track); err != nil {
		e.discard(ctx, logoPath)
		e.discard(ctx, audioPath)
		return nil, err
	}

	e.invalidateFeed(ctx)
	return track, nil
}

// DeleteTrack removes a track. Tracks still referenced by albums or
// playlists are protected by the store.
func (e *Engine) DeleteTrack(ctx context.Context, id int64) error {
	if err := e.tracks.Delete(ctx, id); err != nil {
		return err
	}
	e.invalidateFeed(ctx)
	return nil
}

// PlayTrack records one play. Counters only ever move up; ranking reads
// see whatever the counter holds at query time.
func (e *Engine) PlayTrack(ctx context.Context, id int64) error {
	return e.tracks.IncrementPlayCount(ctx, id)
}

// SetTrackStatus bulk-publishes or bulk-unpublishes tracks. Idempotent:
// re-publishing a published track changes nothing.
func (e *Engine) SetTrackStatus(ctx context.Context, ids []int64, status model.TrackStatus) (int64, error) {
	n, err := e.tracks.SetStatus(ctx, ids, status)
	if err != nil {
		return n, err
	}
	e.invalidateFeed(ctx)
	return n, nil
}
