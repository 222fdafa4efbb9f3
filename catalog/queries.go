package catalog

import (
	"context"
	"fmt"
	"strings"

	"mlmusic/model"
)

// GenreTracks pairs a genre with its published tracks. A genre with no
// published tracks still appears, with an empty list.
type GenreTracks struct {
	Genre  model.Genre   `json:"genre"`
	Tracks []model.Track `json:"tracks"`
}

// HomeFeed is everything the landing page shows.
type HomeFeed struct {
	Tracks        []model.Track `json:"tracks"`
	TracksByGenre []GenreTracks `json:"tracksByGenre"`
	Albums        []model.Album `json:"albums"`
}

// HomeFeed assembles the landing page: every published track, the same
// tracks grouped per genre, and the album list. Whether the album list is
// status-filtered is a policy switch, not a hard-coded rule.
func (e *Engine) HomeFeed(ctx context.Context) (*HomeFeed, error) {
	if e.feed != nil {
		if feed, ok := e.feed.GetHomeFeed(ctx); ok {
			return feed, nil
		}
	}

	tracks, err := e.tracks.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := e.genres.List(ctx)
	if err != nil {
		return nil, err
	}
	albums, err := e.albums.List(ctx, e.policy.HomeAlbumsPublishedOnly)
	if err != nil {
		return nil, err
	}

	byGenre := make(map[int64][]model.Track, len(genres))
	for _, t := range tracks {
		byGenre[t.GenreID] = append(byGenre[t.GenreID], t)
	}

	grouped := make([]GenreTracks, 0, len(genres))
	for _, g := range genres {
		genreTracks := byGenre[g.ID]
		if genreTracks == nil {
			genreTracks = []model.Track{}
		}
		grouped = append(grouped, GenreTracks{Genre: g, Tracks: genreTracks})
	}

	feed := &HomeFeed{
		Tracks:        tracks,
		TracksByGenre: grouped,
		Albums:        albums,
	}
	if e.feed != nil {
		e.feed.SetHomeFeed(ctx, feed)
	}
	return feed, nil
}

// ArtistPage is everything an artist's page shows.
type ArtistPage struct {
	Artist model.Artist `json:"artist"`
	// Tracks are the artist's published tracks (main or featured
	// author), newest publication first, each track once.
	Tracks []model.Track `json:"tracks"`
	// TopTracks are the same tracks reordered by play count, capped at 5.
	TopTracks []model.Track `json:"topTracks"`
	Albums    []model.Album `json:"albums"`
}

const topTrackCount = 5

// ArtistPage assembles an artist's page by slug.
func (e *Engine) ArtistPage(ctx context.Context, slug string) (*ArtistPage, error) {
	artist, err := e.artists.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	tracks, err := e.tracks.ListPublishedByArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	albums, err := e.albums.ListByArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	return &ArtistPage{
		Artist:    *artist,
		Tracks:    tracks,
		TopTracks: TopTracks(tracks, topTrackCount),
		Albums:    albums,
	}, nil
}

// AlbumPage returns a published album by the (artist slug, album slug)
// pair, tracks in insertion order. An unreleased album is not found.
// Track membership is not re-filtered by per-track status: attaching a
// track to a published album is an editorial act.
func (e *Engine) AlbumPage(ctx context.Context, artistSlug, albumSlug string) (*model.Album, error) {
	album, err := e.albums.GetByAuthorAndSlug(ctx, artistSlug, albumSlug)
	if err != nil {
		return nil, err
	}
	if !IsAlbumPublished(album) {
		return nil, fmt.Errorf("%w: album %s/%s", model.ErrNotFound, artistSlug, albumSlug)
	}
	return album, nil
}

// Search matches the query case-insensitively against track names and
// main-author names, published tracks only. An empty query returns an
// empty result set rather than the whole catalog.
func (e *Engine) Search(ctx context.Context, query string) ([]model.Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Track{}, nil
	}
	return e.tracks.SearchPublished(ctx, query)
}
