package models

import "time"

// BaseModel provides shared columns for all tables.
type BaseModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"createdDate"`
	UpdatedDate time.Time `gorm:"autoUpdateTime" json:"updatedDate"`
}
