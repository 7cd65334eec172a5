package models

import "time"

// BaseModel holds the fields shared by every persisted record. Timestamps
// are assigned by GORM on write.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
