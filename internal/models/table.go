package models

import "time"

const (
	MinTableCapacity = 1
	MaxTableCapacity = 20
)

type Table struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	TableNumber int  `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Capacity    int  `gorm:"not null;check:chk_tables_capacity,capacity >= 1 AND capacity <= 20" json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableSequence keeps the highest table number ever issued, so numbers
// freed by a delete are not handed out again.
type TableSequence struct {
	Name  string `gorm:"primaryKey;size:50"`
	Value int    `gorm:"not null;default:0"`
}

const TableNumberSequence = "tables"
