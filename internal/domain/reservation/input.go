package reservation

import (
	"strings"

	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

// ======================================================
// AVAILABILITY
// ======================================================

type AvailabilityQuery struct {
	Date      string
	TimeSlot  string
	PartySize int
}

func (q AvailabilityQuery) Validate() error {
	if validators.IsBlank(q.Date) || validators.IsBlank(q.TimeSlot) {
		return ErrMissingFields
	}
	if q.PartySize < 1 {
		return ErrInvalidPartySize
	}
	return nil
}

// Normalized trims the keys; matching on them is exact afterwards.
func (q AvailabilityQuery) Normalized() AvailabilityQuery {
	q.Date = strings.TrimSpace(q.Date)
	q.TimeSlot = strings.TrimSpace(q.TimeSlot)
	return q
}

// ======================================================
// CREATE
// ======================================================

type CreateReservationInput struct {
	UserID   uint
	Date     string
	TimeSlot string
	Guests   int
}

func (in CreateReservationInput) Query() AvailabilityQuery {
	return AvailabilityQuery{
		Date:      in.Date,
		TimeSlot:  in.TimeSlot,
		PartySize: in.Guests,
	}.Normalized()
}

func (in CreateReservationInput) Validate() error {
	return in.Query().Validate()
}

// ======================================================
// LISTING
// ======================================================

// Filter narrows admin listings. An empty Date matches every row.
type Filter struct {
	Date string
}
