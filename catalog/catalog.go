// Package catalog is the catalog and visibility engine: it owns slug and
// duration derivation, publication gating, playlist access rules and the
// viewer-facing queries. Everything here is synchronous; each call is a
// self-contained read or read-modify-write against the store.
package catalog

import (
	"context"
	"fmt"

	"mlmusic/core/audio"
	"mlmusic/logger"
	"mlmusic/model"
	"mlmusic/repository"
	"mlmusic/storage"
)

// MediaStore is the slice of the object store the engine needs. Uploads
// complete before the owning row is written; a failed upload aborts the
// whole operation.
type MediaStore interface {
	PutFile(ctx context.Context, kind storage.MediaKind, localPath, contentType string) (string, error)
	Remove(ctx context.Context, objectPath string) error
}

// FeedCache caches the home feed between bulk status changes. A nil
// cache disables caching.
type FeedCache interface {
	GetHomeFeed(ctx context.Context) (*HomeFeed, bool)
	SetHomeFeed(ctx context.Context, feed *HomeFeed)
	Invalidate(ctx context.Context)
}

// Policy holds the visibility switches that are deliberately
// configurable rather than hard-coded.
type Policy struct {
	// HomeAlbumsPublishedOnly filters the home album list by status.
	// Historically the home page listed every album, so false is the
	// default.
	HomeAlbumsPublishedOnly bool
}

// MediaFile is an upload handed to the engine: a local temp file written
// by the caller plus its content type.
type MediaFile struct {
	Path        string
	ContentType string
}

// Deps wires an Engine. Prober, Media and Feed may be nil when the
// corresponding concern is unused (e.g. in tests).
type Deps struct {
	Genres    repository.GenreRepository
	Artists   repository.ArtistRepository
	Tracks    repository.TrackRepository
	Albums    repository.AlbumRepository
	Playlists repository.PlaylistRepository
	Users     repository.UserRepository
	Prober    audio.Prober
	Media     MediaStore
	Feed      FeedCache
	Policy    Policy
}

// Engine answers visibility queries and applies catalog mutations.
type Engine struct {
	genres    repository.GenreRepository
	artists   repository.ArtistRepository
	tracks    repository.TrackRepository
	albums    repository.AlbumRepository
	playlists repository.PlaylistRepository
	users     repository.UserRepository
	prober    audio.Prober
	media     MediaStore
	feed      FeedCache
	policy    Policy
}

// NewEngine creates an Engine from its dependencies.
func NewEngine(deps Deps) *Engine {
	return &Engine{
		genres:    deps.Genres,
		artists:   deps.Artists,
		tracks:    deps.Tracks,
		albums:    deps.Albums,
		playlists: deps.Playlists,
		users:     deps.Users,
		prober:    deps.Prober,
		media:     deps.Media,
		feed:      deps.Feed,
		policy:    deps.Policy,
	}
}

// upload stores a media file and returns its object path. A nil file
// yields an empty path.
func (e *Engine) upload(ctx context.Context, kind storage.MediaKind, f *MediaFile) (string, error) {
	if f == nil {
		return "", nil
	}
	if e.media == nil {
		return "", fmt.Errorf("%w: no media store configured", model.ErrValidation)
	}
	return e.media.PutFile(ctx, kind, f.Path, f.ContentType)
}

// discard removes an uploaded object after the owning row failed to
// commit, so no partial upload is left behind.
func (e *Engine) discard(ctx context.Context, objectPath string) {
	if objectPath == "" || e.media == nil {
		return
	}
	if err := e.media.Remove(ctx, objectPath); err != nil {
		logger.Warn("failed to remove orphaned media object",
			logger.String("object", objectPath),
			logger.ErrorField(err))
	}
}

func (e *Engine) invalidateFeed(ctx context.Context) {
	if e.feed != nil {
		e.feed.Invalidate(ctx)
	}
}
