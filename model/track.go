package model

import "time"

// TrackStatus gates whether a track appears in public-facing listings.
type TrackStatus int8

const (
	TrackUnreleased TrackStatus = 0
	TrackPublished  TrackStatus = 1
)

// Track is a single piece of music in the catalog.
type Track struct {
	ID              int64       `gorm:"primaryKey" json:"id"`
	Name            string      `gorm:"size:128;not null" json:"name"`
	MainAuthorID    int64       `gorm:"not null" json:"mainAuthorId"`
	MainAuthor      *Artist     `gorm:"constraint:OnDelete:RESTRICT" json:"mainAuthor,omitempty"`
	FeaturedAuthors []Artist    `gorm:"many2many:track_featured_authors" json:"featuredAuthors,omitempty"`
	GenreID         int64       `gorm:"not null" json:"genreId"`
	Genre           *Genre      `gorm:"constraint:OnDelete:RESTRICT" json:"genre,omitempty"`
	PublicationTime time.Time   `json:"publicationTime"`
	LogoPath        string      `gorm:"size:767" json:"logoPath"`
	AudioPath       string      `gorm:"size:767" json:"-"` // object path in the media store, not a URL
	Lyrics          string      `gorm:"type:text" json:"lyrics,omitempty"`
	Duration        string      `gorm:"size:32;not null;default:0" json:"duration"` // "M.SS" or "H.MM.SS"
	IsPublished     TrackStatus `gorm:"not null;default:1" json:"isPublished"`
	PlayCount       int64       `gorm:"not null;default:0" json:"playCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// AuthoredBy reports whether the artist is the main author or one of the
// featured authors. FeaturedAuthors must be loaded for the featured check.
func (t *Track) AuthoredBy(artistID int64) bool {
	if t.MainAuthorID == artistID {
		return true
	}
	for _, a := range t.FeaturedAuthors {
		if a.ID == artistID {
			return true
		}
	}
	return false
}
