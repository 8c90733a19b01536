package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreRecord is the row shape of the MySQL-backed store: one payload
// per collection name, overwritten whole on every save.
type StoreRecord struct {
	Name      string         `gorm:"primaryKey;size:64" json:"name"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	UpdatedAt time.Time      `json:"updated_at"`
}
