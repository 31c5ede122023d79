package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint  `gorm:"not null;index" json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// TableID may outlive its table: deleting a table keeps history.
	TableID uint   `gorm:"not null;index" json:"tableId"`
	Table   *Table `gorm:"foreignKey:TableID" json:"table,omitempty"`

	Date     string `gorm:"size:10;not null;index" json:"date"`
	TimeSlot string `gorm:"size:32;not null" json:"timeSlot"`
	Guests   int    `gorm:"not null;check:chk_reservations_guests,guests >= 1" json:"guests"`

	Status      string     `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	CancelledAt *time.Time `json:"cancelledAt"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
