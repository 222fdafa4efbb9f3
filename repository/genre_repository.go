package repository

import (
	"context"

	"mlmusic/model"

	"gorm.io/gorm"
)

// GenreRepository defines the interface for genre data operations.
type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	Update(ctx context.Context, genre *model.Genre) error
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	GetBySlug(ctx context.Context, slug string) (*model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type gormGenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a GORM-backed GenreRepository.
func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &gormGenreRepository{db: db}
}

func (r *gormGenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return translate(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *gormGenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	return translate(r.db.WithContext(ctx).Save(genre).Error)
}

func (r *gormGenreRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *gormGenreRepository) GetBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *gormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Order("name").Find(&genres).Error; err != nil {
		return nil, translate(err)
	}
	return genres, nil
}

// Delete removes a genre. A genre still referenced by artists, tracks or
// albums is protected by foreign keys and the delete fails.
func (r *gormGenreRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Genre{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
