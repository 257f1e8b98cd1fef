package model

import "time"

// History is one recorded "current rate" request. Rows are immutable and
// shown newest-first.
type History struct {
	ID     uint      `gorm:"primaryKey"`
	UserID uint      `gorm:"index"`
	Date   time.Time `gorm:"index"`
	Rate   float64
}
