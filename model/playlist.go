package model

import "time"

// Playlist is a user-owned track collection. Unlike the other slugs, a
// playlist slug is fixed at creation so shared links survive renames.
type Playlist struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:128;not null;uniqueIndex:uq_playlists_owner_name" json:"name"`
	Slug       string    `gorm:"size:256;not null;uniqueIndex" json:"slug"`
	OwnerID    int64     `gorm:"not null;uniqueIndex:uq_playlists_owner_name" json:"ownerId"`
	Owner      *User     `gorm:"constraint:OnDelete:RESTRICT" json:"owner,omitempty"`
	AddedUsers []User    `gorm:"many2many:playlist_added_users" json:"addedUsers,omitempty"`
	Tracks     []Track   `gorm:"many2many:playlist_tracks" json:"tracks,omitempty"`
	IsPublic   bool      `gorm:"not null;default:0" json:"isPublic"`
	LogoPath   string    `gorm:"size:767" json:"logoPath"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
