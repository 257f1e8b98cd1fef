package model

import "time"

// User stores a Telegram chat and its daily-subscription flag.
type User struct {
	ID         uint  `gorm:"primaryKey"`
	ChatID     int64 `gorm:"uniqueIndex;not null"`
	Subscribed bool  `gorm:"default:false"`
	CreatedAt  time.Time
	History    []History `gorm:"foreignKey:UserID"`
}
