package repository

import (
	"context"

	"mlmusic/model"

	"gorm.io/gorm"
)

// PlaylistRepository defines the interface for playlist data operations.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	// Update saves mutable fields and replaces the track and added-user
	// sets. The slug is never written after creation.
	Update(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id int64) (*model.Playlist, error)
	GetBySlug(ctx context.Context, slug string) (*model.Playlist, error)
	// ListVisibleTo returns playlists the viewer owns, was added to, or
	// that are public.
	ListVisibleTo(ctx context.Context, viewerID int64) ([]model.Playlist, error)
	ListOwned(ctx context.Context, ownerID int64) ([]model.Playlist, error)
	ListAddedTo(ctx context.Context, userID int64) ([]model.Playlist, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error)
	// Delete removes the playlist and its membership rows only; tracks and
	// users are untouched.
	Delete(ctx context.Context, id int64) error
}

type gormPlaylistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository creates a GORM-backed PlaylistRepository.
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &gormPlaylistRepository{db: db}
}

func (r *gormPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	// Join entries only; referenced tracks and users are not rewritten.
	return translate(r.db.WithContext(ctx).Omit("Tracks.*", "AddedUsers.*").Create(playlist).Error)
}

func (r *gormPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(playlist).Updates(map[string]interface{}{
			"name":      playlist.Name,
			"is_public": playlist.IsPublic,
			"logo_path": playlist.LogoPath,
		}).Error
		if err != nil {
			return err
		}
		if err := tx.Model(playlist).Association("Tracks").Replace(playlist.Tracks); err != nil {
			return err
		}
		return tx.Model(playlist).Association("AddedUsers").Replace(playlist.AddedUsers)
	}))
}

func (r *gormPlaylistRepository) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Owner").
		Preload("AddedUsers").
		Preload("Tracks", func(tx *gorm.DB) *gorm.DB { return tx.Order("tracks.id") }).
		Preload("Tracks.MainAuthor").
		Preload("Tracks.FeaturedAuthors")
}

func (r *gormPlaylistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.preload(r.db.WithContext(ctx)).First(&playlist, id).Error; err != nil {
		return nil, translate(err)
	}
	return &playlist, nil
}

func (r *gormPlaylistRepository) GetBySlug(ctx context.Context, slug string) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.preload(r.db.WithContext(ctx)).Where("slug = ?", slug).First(&playlist).Error; err != nil {
		return nil, translate(err)
	}
	return &playlist, nil
}

func (r *gormPlaylistRepository) ListVisibleTo(ctx context.Context, viewerID int64) ([]model.Playlist, error) {
	added := r.db.
		Table("playlist_added_users").
		Select("playlist_id").
		Where("user_id = ?", viewerID)

	var playlists []model.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ? OR is_public = ? OR id IN (?)", viewerID, true, added).
		Order("name").
		Preload("Owner").
		Find(&playlists).Error
	if err != nil {
		return nil, translate(err)
	}
	return playlists, nil
}

func (r *gormPlaylistRepository) ListOwned(ctx context.Context, ownerID int64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&playlists).Error
	if err != nil {
		return nil, translate(err)
	}
	return playlists, nil
}

func (r *gormPlaylistRepository) ListAddedTo(ctx context.Context, userID int64) ([]model.Playlist, error) {
	added := r.db.
		Table("playlist_added_users").
		Select("playlist_id").
		Where("user_id = ?", userID)

	var playlists []model.Playlist
	err := r.db.WithContext(ctx).
		Where("id IN (?)", added).
		Order("name").
		Preload("Owner").
		Find(&playlists).Error
	if err != nil {
		return nil, translate(err)
	}
	return playlists, nil
}

func (r *gormPlaylistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Playlist{}).
		Where("owner_id = ? AND name = ?", ownerID, name)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *gormPlaylistRepository) Delete(ctx context.Context, id int64) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		playlist := model.Playlist{ID: id}
		if err := tx.Model(&playlist).Association("Tracks").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&playlist).Association("AddedUsers").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&playlist)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	}))
}
