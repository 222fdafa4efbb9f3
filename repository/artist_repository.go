package repository

import (
	"context"

	"mlmusic/model"

	"gorm.io/gorm"
)

// ArtistRepository defines the interface for artist data operations.
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	Update(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	ListConfirmed(ctx context.Context) ([]model.Artist, error)
	IncrementSubCount(ctx context.Context, id int64) error
	SetConfirmed(ctx context.Context, ids []int64, status model.ArtistStatus) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type gormArtistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a GORM-backed ArtistRepository.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &gormArtistRepository{db: db}
}

func (r *gormArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return translate(r.db.WithContext(ctx).Create(artist).Error)
}

func (r *gormArtistRepository) Update(ctx context.Context, artist *model.Artist) error {
	return translate(r.db.WithContext(ctx).Omit("Genre").Save(artist).Error)
}

func (r *gormArtistRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Preload("Genre").First(&artist, id).Error; err != nil {
		return nil, translate(err)
	}
	return &artist, nil
}

func (r *gormArtistRepository) GetBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Preload("Genre").Where("slug = ?", slug).First(&artist).Error; err != nil {
		return nil, translate(err)
	}
	return &artist, nil
}

func (r *gormArtistRepository) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Order("name").Find(&artists).Error; err != nil {
		return nil, translate(err)
	}
	return artists, nil
}

func (r *gormArtistRepository) ListConfirmed(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	err := r.db.WithContext(ctx).
		Where("is_confirmed = ?", model.ArtistConfirmed).
		Order("name").
		Find(&artists).Error
	if err != nil {
		return nil, translate(err)
	}
	return artists, nil
}

// IncrementSubCount bumps the subscriber counter by one. The increment is
// applied in the database, not read-modify-write in the application.
func (r *gormArtistRepository) IncrementSubCount(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Artist{}).
		Where("id = ?", id).
		UpdateColumn("sub_count", gorm.Expr("sub_count + 1"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SetConfirmed applies a confirmation status to a set of artists.
// Re-applying a status a row already has is a no-op.
func (r *gormArtistRepository) SetConfirmed(ctx context.Context, ids []int64, status model.ArtistStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Artist{}).
		Where("id IN ?", ids).
		Update("is_confirmed", status)
	return res.RowsAffected, translate(res.Error)
}

// Delete removes an artist. Artists still referenced by tracks or albums
// are protected by foreign keys and the delete fails.
func (r *gormArtistRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Artist{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
