package repository

import (
	"context"
	"strings"

	"mlmusic/model"

	"gorm.io/gorm"
)

// TrackRepository defines the interface for track data operations.
type TrackRepository interface {
	Create(ctx context.Context, track *model.Track) error
	Update(ctx context.Context, track *model.Track) error
	GetByID(ctx context.Context, id int64) (*model.Track, error)
	// ListPublished returns every published track ordered by id.
	ListPublished(ctx context.Context) ([]model.Track, error)
	// ListPublishedByArtist returns published tracks where the artist is
	// the main author or a featured author, each track once, newest
	// publication first.
	ListPublishedByArtist(ctx context.Context, artistID int64) ([]model.Track, error)
	// SearchPublished matches the query case-insensitively against the
	// track name or the main author name.
	SearchPublished(ctx context.Context, query string) ([]model.Track, error)
	IncrementPlayCount(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, ids []int64, status model.TrackStatus) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type gormTrackRepository struct {
	db *gorm.DB
}

// NewTrackRepository creates a GORM-backed TrackRepository.
func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &gormTrackRepository{db: db}
}

func (r *gormTrackRepository) Create(ctx context.Context, track *model.Track) error {
	// Omit the association rows themselves; only join entries are
	// written for the featured authors.
	return translate(r.db.WithContext(ctx).Omit("FeaturedAuthors.*").Create(track).Error)
}

// Update saves the track row and replaces the featured-author set with
// whatever the struct carries.
func (r *gormTrackRepository) Update(ctx context.Context, track *model.Track) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Omit("FeaturedAuthors", "MainAuthor", "Genre").Save(track).Error; err != nil {
		return translate(err)
	}
	if err := tx.Model(track).Association("FeaturedAuthors").Replace(track.FeaturedAuthors); err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormTrackRepository) GetByID(ctx context.Context, id int64) (*model.Track, error) {
	var track model.Track
	err := r.db.WithContext(ctx).
		Preload("MainAuthor").
		Preload("FeaturedAuthors").
		Preload("Genre").
		First(&track, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &track, nil
}

func (r *gormTrackRepository) ListPublished(ctx context.Context) ([]model.Track, error) {
	var tracks []model.Track
	err := r.db.WithContext(ctx).
		Where("is_published = ?", model.TrackPublished).
		Order("id").
		Preload("MainAuthor").
		Preload("Genre").
		Find(&tracks).Error
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

func (r *gormTrackRepository) ListPublishedByArtist(ctx context.Context, artistID int64) ([]model.Track, error) {
	featured := r.db.
		Table("track_featured_authors").
		Select("track_id").
		Where("artist_id = ?", artistID)

	var tracks []model.Track
	err := r.db.WithContext(ctx).
		Where("is_published = ?", model.TrackPublished).
		Where("main_author_id = ? OR id IN (?)", artistID, featured).
		Order("publication_time DESC").
		Preload("MainAuthor").
		Preload("FeaturedAuthors").
		Preload("Genre").
		Find(&tracks).Error
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

func (r *gormTrackRepository) SearchPublished(ctx context.Context, query string) ([]model.Track, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var tracks []model.Track
	err := r.db.WithContext(ctx).
		Joins("JOIN artists ON artists.id = tracks.main_author_id").
		Where("tracks.is_published = ?", model.TrackPublished).
		Where("LOWER(tracks.name) LIKE ? OR LOWER(artists.name) LIKE ?", pattern, pattern).
		Order("tracks.id").
		Preload("MainAuthor").
		Preload("Genre").
		Find(&tracks).Error
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

// IncrementPlayCount bumps the play counter by one in the database.
func (r *gormTrackRepository) IncrementPlayCount(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Track{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + 1"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// SetStatus applies a publication status to a set of tracks. Re-applying
// a status a row already has is a no-op.
func (r *gormTrackRepository) SetStatus(ctx context.Context, ids []int64, status model.TrackStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Track{}).
		Where("id IN ?", ids).
		Update("is_published", status)
	return res.RowsAffected, translate(res.Error)
}

// Delete removes a track. A track still referenced by an album or a
// playlist is protected by the join-table foreign keys.
func (r *gormTrackRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Track{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
