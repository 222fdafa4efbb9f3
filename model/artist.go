package model

// ArtistStatus is the moderation state of an artist.
type ArtistStatus int8

const (
	ArtistUnconfirmed ArtistStatus = 0
	ArtistConfirmed   ArtistStatus = 1
)

// Artist is a performer. The slug is derived from the name and identifies
// the artist page.
type Artist struct {
	ID          int64        `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:64;not null" json:"name"`
	Slug        string       `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	LogoPath    string       `gorm:"size:767" json:"logoPath"`
	IsConfirmed ArtistStatus `gorm:"not null;default:1" json:"isConfirmed"`
	SubCount    int64        `gorm:"not null;default:0" json:"subCount"`
	GenreID     int64        `gorm:"not null" json:"genreId"`
	Genre       *Genre       `gorm:"constraint:OnDelete:RESTRICT" json:"genre,omitempty"`
}
