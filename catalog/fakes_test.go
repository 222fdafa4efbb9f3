package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"mlmusic/model"
	"mlmusic/storage"
)

// Hand-written fakes with per-method function fields. A call to an
// unset method panics, which is exactly what we want from a fake: it
// flags a code path the test did not expect.

type fakeGenreRepo struct {
	CreateFn    func(ctx context.Context, genre *model.Genre) error
	UpdateFn    func(ctx context.Context, genre *model.Genre) error
	GetByIDFn   func(ctx context.Context, id int64) (*model.Genre, error)
	GetBySlugFn func(ctx context.Context, slug string) (*model.Genre, error)
	ListFn      func(ctx context.Context) ([]model.Genre, error)
	DeleteFn    func(ctx context.Context, id int64) error
}

func (f *fakeGenreRepo) Create(ctx context.Context, genre *model.Genre) error {
	return f.CreateFn(ctx, genre)
}
func (f *fakeGenreRepo) Update(ctx context.Context, genre *model.Genre) error {
	return f.UpdateFn(ctx, genre)
}
func (f *fakeGenreRepo) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeGenreRepo) GetBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	return f.GetBySlugFn(ctx, slug)
}
func (f *fakeGenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	return f.ListFn(ctx)
}
func (f *fakeGenreRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeArtistRepo struct {
	CreateFn            func(ctx context.Context, artist *model.Artist) error
	UpdateFn            func(ctx context.Context, artist *model.Artist) error
	GetByIDFn           func(ctx context.Context, id int64) (*model.Artist, error)
	GetBySlugFn         func(ctx context.Context, slug string) (*model.Artist, error)
	ListFn              func(ctx context.Context) ([]model.Artist, error)
	ListConfirmedFn     func(ctx context.Context) ([]model.Artist, error)
	IncrementSubCountFn func(ctx context.Context, id int64) error
	SetConfirmedFn      func(ctx context.Context, ids []int64, status model.ArtistStatus) (int64, error)
	DeleteFn            func(ctx context.Context, id int64) error
}

func (f *fakeArtistRepo) Create(ctx context.Context, artist *model.Artist) error {
	return f.CreateFn(ctx, artist)
}
func (f *fakeArtistRepo) Update(ctx context.Context, artist *model.Artist) error {
	return f.UpdateFn(ctx, artist)
}
func (f *fakeArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeArtistRepo) GetBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	return f.GetBySlugFn(ctx, slug)
}
func (f *fakeArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	return f.ListFn(ctx)
}
func (f *fakeArtistRepo) ListConfirmed(ctx context.Context) ([]model.Artist, error) {
	return f.ListConfirmedFn(ctx)
}
func (f *fakeArtistRepo) IncrementSubCount(ctx context.Context, id int64) error {
	return f.IncrementSubCountFn(ctx, id)
}
func (f *fakeArtistRepo) SetConfirmed(ctx context.Context, ids []int64, status model.ArtistStatus) (int64, error) {
	return f.SetConfirmedFn(ctx, ids, status)
}
func (f *fakeArtistRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeTrackRepo struct {
	CreateFn                func(ctx context.Context, track *model.Track) error
	UpdateFn                func(ctx context.Context, track *model.Track) error
	GetByIDFn               func(ctx context.Context, id int64) (*model.Track, error)
	ListPublishedFn         func(ctx context.Context) ([]model.Track, error)
	ListPublishedByArtistFn func(ctx context.Context, artistID int64) ([]model.Track, error)
	SearchPublishedFn       func(ctx context.Context, query string) ([]model.Track, error)
	IncrementPlayCountFn    func(ctx context.Context, id int64) error
	SetStatusFn             func(ctx context.Context, ids []int64, status model.TrackStatus) (int64, error)
	DeleteFn                func(ctx context.Context, id int64) error
}

func (f *fakeTrackRepo) Create(ctx context.Context, track *model.Track) error {
	return f.CreateFn(ctx, track)
}
func (f *fakeTrackRepo) Update(ctx context.Context, track *model.Track) error {
	return f.UpdateFn(ctx, track)
}
func (f *fakeTrackRepo) GetByID(ctx context.Context, id int64) (*model.Track, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeTrackRepo) ListPublished(ctx context.Context) ([]model.Track, error) {
	return f.ListPublishedFn(ctx)
}
func (f *fakeTrackRepo) ListPublishedByArtist(ctx context.Context, artistID int64) ([]model.Track, error) {
	return f.ListPublishedByArtistFn(ctx, artistID)
}
func (f *fakeTrackRepo) SearchPublished(ctx context.Context, query string) ([]model.Track, error) {
	return f.SearchPublishedFn(ctx, query)
}
func (f *fakeTrackRepo) IncrementPlayCount(ctx context.Context, id int64) error {
	return f.IncrementPlayCountFn(ctx, id)
}
func (f *fakeTrackRepo) SetStatus(ctx context.Context, ids []int64, status model.TrackStatus) (int64, error) {
	return f.SetStatusFn(ctx, ids, status)
}
func (f *fakeTrackRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeAlbumRepo struct {
	CreateFn             func(ctx context.Context, album *model.Album) error
	UpdateFn             func(ctx context.Context, album *model.Album) error
	GetByIDFn            func(ctx context.Context, id int64) (*model.Album, error)
	GetByAuthorAndSlugFn func(ctx context.Context, artistSlug, albumSlug string) (*model.Album, error)
	ListFn               func(ctx context.Context, publishedOnly bool) ([]model.Album, error)
	ListByArtistFn       func(ctx context.Context, artistID int64) ([]model.Album, error)
	SetStatusFn          func(ctx context.Context, ids []int64, status model.AlbumStatus) (int64, error)
	DeleteFn             func(ctx context.Context, id int64) error
}

func (f *fakeAlbumRepo) Create(ctx context.Context, album *model.Album) error {
	return f.CreateFn(ctx, album)
}
func (f *fakeAlbumRepo) Update(ctx context.Context, album *model.Album) error {
	return f.UpdateFn(ctx, album)
}
func (f *fakeAlbumRepo) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAlbumRepo) GetByAuthorAndSlug(ctx context.Context, artistSlug, albumSlug string) (*model.Album, error) {
	return f.GetByAuthorAndSlugFn(ctx, artistSlug, albumSlug)
}
func (f *fakeAlbumRepo) List(ctx context.Context, publishedOnly bool) ([]model.Album, error) {
	return f.ListFn(ctx, publishedOnly)
}
func (f *fakeAlbumRepo) ListByArtist(ctx context.Context, artistID int64) ([]model.Album, error) {
	return f.ListByArtistFn(ctx, artistID)
}
func (f *fakeAlbumRepo) SetStatus(ctx context.Context, ids []int64, status model.AlbumStatus) (int64, error) {
	return f.SetStatusFn(ctx, ids, status)
}
func (f *fakeAlbumRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakePlaylistRepo struct {
	CreateFn               func(ctx context.Context, playlist *model.Playlist) error
	UpdateFn               func(ctx context.Context, playlist *model.Playlist) error
	GetByIDFn              func(ctx context.Context, id int64) (*model.Playlist, error)
	GetBySlugFn            func(ctx context.Context, slug string) (*model.Playlist, error)
	ListVisibleToFn        func(ctx context.Context, viewerID int64) ([]model.Playlist, error)
	ListOwnedFn            func(ctx context.Context, ownerID int64) ([]model.Playlist, error)
	ListAddedToFn          func(ctx context.Context, userID int64) ([]model.Playlist, error)
	ExistsByOwnerAndNameFn func(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error)
	DeleteFn               func(ctx context.Context, id int64) error
}

func (f *fakePlaylistRepo) Create(ctx context.Context, playlist *model.Playlist) error {
	return f.CreateFn(ctx, playlist)
}
func (f *fakePlaylistRepo) Update(ctx context.Context, playlist *model.Playlist) error {
	return f.UpdateFn(ctx, playlist)
}
func (f *fakePlaylistRepo) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakePlaylistRepo) GetBySlug(ctx context.Context, slug string) (*model.Playlist, error) {
	return f.GetBySlugFn(ctx, slug)
}
func (f *fakePlaylistRepo) ListVisibleTo(ctx context.Context, viewerID int64) ([]model.Playlist, error) {
	return f.ListVisibleToFn(ctx, viewerID)
}
func (f *fakePlaylistRepo) ListOwned(ctx context.Context, ownerID int64) ([]model.Playlist, error) {
	return f.ListOwnedFn(ctx, ownerID)
}
func (f *fakePlaylistRepo) ListAddedTo(ctx context.Context, userID int64) ([]model.Playlist, error) {
	return f.ListAddedToFn(ctx, userID)
}
func (f *fakePlaylistRepo) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	return f.ExistsByOwnerAndNameFn(ctx, ownerID, name, excludeID)
}
func (f *fakePlaylistRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

type fakeUserRepo struct {
	CreateFn        func(ctx context.Context, user *model.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	ListExceptFn    func(ctx context.Context, userID int64) ([]model.User, error)
	UpdatePhotoFn   func(ctx context.Context, id int64, photoPath string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.GetByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) ListExcept(ctx context.Context, userID int64) ([]model.User, error) {
	return f.ListExceptFn(ctx, userID)
}
func (f *fakeUserRepo) UpdatePhoto(ctx context.Context, id int64, photoPath string) error {
	return f.UpdatePhotoFn(ctx, id, photoPath)
}

// fakeProber returns a fixed length or error.
type fakeProber struct {
	seconds int
	err     error
}

func (p fakeProber) Probe(ctx context.Context, path string) (int, error) {
	return p.seconds, p.err
}

// fakeMedia records uploads and removals. Object paths are predictable:
// "<kind>/<base name>".
type fakeMedia struct {
	putErr  error
	puts    []string
	removed []string
}

func (m *fakeMedia) PutFile(ctx context.Context, kind storage.MediaKind, localPath, contentType string) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	objectPath := fmt.Sprintf("%s/%s", kind, filepath.Base(localPath))
	m.puts = append(m.puts, objectPath)
	return objectPath, nil
}

func (m *fakeMedia) Remove(ctx context.Context, objectPath string) error {
	m.removed = append(m.removed, objectPath)
	return nil
}

// fakeFeed is an in-memory feed cache.
type fakeFeed struct {
	feed        *HomeFeed
	invalidated int
}

func (f *fakeFeed) GetHomeFeed(ctx context.Context) (*HomeFeed, bool) {
	return f.feed, f.feed != nil
}

func (f *fakeFeed) SetHomeFeed(ctx context.Context, feed *HomeFeed) {
	f.feed = feed
}

func (f *fakeFeed) Invalidate(ctx context.Context) {
	f.feed = nil
	f.invalidated++
}
