package repository

import (
	"context"

	"mlmusic/model"

	"gorm.io/gorm"
)

// AlbumRepository defines the interface for album data operations.
type AlbumRepository interface {
	Create(ctx context.Context, album *model.Album) error
	Update(ctx context.Context, album *model.Album) error
	GetByID(ctx context.Context, id int64) (*model.Album, error)
	// GetByAuthorAndSlug looks an album up by the (artist slug, album slug)
	// pair; album slugs are only unique per artist. Tracks come back in
	// insertion (id) order.
	GetByAuthorAndSlug(ctx context.Context, artistSlug, albumSlug string) (*model.Album, error)
	// List returns albums newest-created first, optionally only published ones.
	List(ctx context.Context, publishedOnly bool) ([]model.Album, error)
	ListByArtist(ctx context.Context, artistID int64) ([]model.Album, error)
	SetStatus(ctx context.Context, ids []int64, status model.AlbumStatus) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type gormAlbumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a GORM-backed AlbumRepository.
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &gormAlbumRepository{db: db}
}

func (r *gormAlbumRepository) Create(ctx context.Context, album *model.Album) error {
	// Join entries only; the referenced tracks are not rewritten.
	return translate(r.db.WithContext(ctx).Omit("Tracks.*").Create(album).Error)
}

// Update saves the album row and replaces its track set with whatever the
// struct carries.
func (r *gormAlbumRepository) Update(ctx context.Context, album *model.Album) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Omit("Tracks", "MainAuthor", "Genre").Save(album).Error; err != nil {
		return translate(err)
	}
	if err := tx.Model(album).Association("Tracks").Replace(album.Tracks); err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormAlbumRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	var album model.Album
	err := r.db.WithContext(ctx).
		Preload("MainAuthor").
		Preload("Genre").
		Preload("Tracks", func(tx *gorm.DB) *gorm.DB { return tx.Order("tracks.id") }).
		First(&album, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &album, nil
}

func (r *gormAlbumRepository) GetByAuthorAndSlug(ctx context.Context, artistSlug, albumSlug string) (*model.Album, error) {
	var album model.Album
	err := r.db.WithContext(ctx).
		Joins("JOIN artists ON artists.id = albums.main_author_id").
		Where("artists.slug = ? AND albums.slug = ?", artistSlug, albumSlug).
		Preload("MainAuthor").
		Preload("Genre").
		Preload("Tracks", func(tx *gorm.DB) *gorm.DB { return tx.Order("tracks.id") }).
		Preload("Tracks.MainAuthor").
		Preload("Tracks.FeaturedAuthors").
		First(&album).Error
	if err != nil {
		return nil, translate(err)
	}
	return &album, nil
}

func (r *gormAlbumRepository) List(ctx context.Context, publishedOnly bool) ([]model.Album, error) {
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Preload("MainAuthor")
	if publishedOnly {
		tx = tx.Where("is_published = ?", model.AlbumPublished)
	}

	var albums []model.Album
	if err := tx.Find(&albums).Error; err != nil {
		return nil, translate(err)
	}
	return albums, nil
}

func (r *gormAlbumRepository) ListByArtist(ctx context.Context, artistID int64) ([]model.Album, error) {
	var albums []model.Album
	err := r.db.WithContext(ctx).
		Where("main_author_id = ?", artistID).
		Order("created_at DESC").
		Preload("Tracks", func(tx *gorm.DB) *gorm.DB { return tx.Order("tracks.id") }).
		Find(&albums).Error
	if err != nil {
		return nil, translate(err)
	}
	return albums, nil
}

// SetStatus applies a publication status to a set of albums. Re-applying
// a status a row already has is a no-op.
func (r *gormAlbumRepository) SetStatus(ctx context.Context, ids []int64, status model.AlbumStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("id IN ?", ids).
		Update("is_published", status)
	return res.RowsAffected, translate(res.Error)
}

// Delete removes an album and its track-membership rows. The tracks
// themselves are untouched.
func (r *gormAlbumRepository) Delete(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		album := model.Album{ID: id}
		if err := tx.Model(&album).Association("Tracks").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&album)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	}))
}
