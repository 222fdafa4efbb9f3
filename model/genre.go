package model

// Genre is a music genre. Artists, tracks and albums all reference one.
type Genre struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;not null;index" json:"name"`
	Slug string `gorm:"size:256;not null;uniqueIndex" json:"slug"`
}
