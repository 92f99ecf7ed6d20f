package models

import "gorm.io/gorm"

// Review is a user's rating and comment on a game. Reviews are never edited in
// place; the author and target game are fixed at creation.
type Review struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index"`
	GameID  uint   `gorm:"not null;index"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string `gorm:"not null"`
	Avatar  string `gorm:"size:512"`
	Date    string `gorm:"size:50"`

	User User `gorm:"foreignKey:UserID"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
