package models

import "time"

// LibraryEntry is the join row behind the user/game many-to-many. It is a named
// model (rather than an implicit join table) so library listings can order on
// the time the game was added.
type LibraryEntry struct {
	UserID    uint `gorm:"primaryKey"`
	GameID    uint `gorm:"primaryKey"`
	CreatedAt time.Time
}
