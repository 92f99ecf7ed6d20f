package models

import "gorm.io/gorm"

// User represents a store account.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Image        string `gorm:"size:512"`
	IsAdmin      bool   `gorm:"not null;default:false;index"`

	// Games the user has added to their library.
	Library []*Game `gorm:"many2many:library_entries;"`
	Reviews []Review
}
