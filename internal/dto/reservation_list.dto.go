package dto

import (
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type TableRefDTO struct {
	ID          uint `json:"id"`
	TableNumber int  `json:"tableNumber"`
	Capacity    int  `json:"capacity"`
}

type UserRefDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReservationDTO keeps table (and user, on admin listings) as null when the
// referenced row is gone.
type ReservationDTO struct {
	ID          uint         `json:"id"`
	UserID      uint         `json:"userId"`
	TableID     uint         `json:"tableId"`
	Table       *TableRefDTO `json:"table"`
	User        *UserRefDTO  `json:"user,omitempty"`
	Date        string       `json:"date"`
	TimeSlot    string       `json:"timeSlot"`
	Guests      int          `json:"guests"`
	Status      string       `json:"status"`
	CancelledAt *time.Time   `json:"cancelledAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func NewReservationDTO(r models.Reservation) ReservationDTO {
	out := ReservationDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		TableID:     r.TableID,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		Guests:      r.Guests,
		Status:      r.Status,
		CancelledAt: r.CancelledAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Table != nil {
		out.Table = &TableRefDTO{
			ID:          r.Table.ID,
			TableNumber: r.Table.TableNumber,
			Capacity:    r.Table.Capacity,
		}
	}
	if r.User != nil {
		out.User = &UserRefDTO{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Email: r.User.Email,
		}
	}
	return out
}

func NewReservationDTOs(list []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(list))
	for _, r := range list {
		out = append(out, NewReservationDTO(r))
	}
	return out
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
