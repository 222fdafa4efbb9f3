package model

import "time"

// AlbumStatus gates whether an album appears in public-facing listings.
type AlbumStatus int8

const (
	AlbumUnreleased AlbumStatus = 0
	AlbumPublished  AlbumStatus = 1
)

// Album groups tracks under a main author. The slug is unique only per
// author; album pages are looked up by the (author slug, album slug) pair.
type Album struct {
	ID              int64       `gorm:"primaryKey" json:"id"`
	Name            string      `gorm:"size:128;not null" json:"name"`
	Slug            string      `gorm:"size:64;not null;uniqueIndex:uq_albums_author_slug" json:"slug"`
	MainAuthorID    int64       `gorm:"not null;uniqueIndex:uq_albums_author_slug" json:"mainAuthorId"`
	MainAuthor      *Artist     `gorm:"constraint:OnDelete:RESTRICT" json:"mainAuthor,omitempty"`
	GenreID         int64       `gorm:"not null" json:"genreId"`
	Genre           *Genre      `gorm:"constraint:OnDelete:RESTRICT" json:"genre,omitempty"`
	Tracks          []Track     `gorm:"many2many:album_tracks" json:"tracks,omitempty"`
	PublicationTime time.Time   `json:"publicationTime"`
	LogoPath        string      `gorm:"size:767" json:"logoPath"`
	IsPublished     AlbumStatus `gorm:"not null;default:1" json:"isPublished"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
