package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultGameImage is the placeholder cover used when a game is created without one.
const DefaultGameImage = "https://images.unsplash.com/photo-1550745165-9bc0b252726f?auto=format&fit=crop&q=80&w=2070"

// Game represents a store listing.
type Game struct {
	gorm.Model
	Title         string `gorm:"size:255;not null"`
	Description   string
	Price         float64 `gorm:"not null;check:price >= 0"`
	OriginalPrice *float64
	Category      string  `gorm:"size:100;not null;index"`
	Rating        float64 `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5"`
	Image         string  `gorm:"size:512;not null"`
	Tags          datatypes.JSONSlice[string]
	IsNew         bool `gorm:"not null;default:false"`
	IsTrending    bool `gorm:"not null;default:false"`
	Screenshots   datatypes.JSONSlice[string]

	// Optional distribution links, each independently absent.
	MagnetLink         *string `gorm:"size:1024"`
	TorrentLink        *string `gorm:"size:1024"`
	DirectDownloadLink *string `gorm:"size:1024"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE"`
	Owners  []*User  `gorm:"many2many:library_entries;"`
}
