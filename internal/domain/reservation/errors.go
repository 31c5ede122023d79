package reservation

import (
	"errors"

	"github.com/BruksfildServices01/table-reservation/internal/httperr"
)

var (
	ErrMissingFields = httperr.New(
		httperr.KindInvalidArgument,
		"missing_fields",
		"date, timeSlot and guests are required",
	)
	ErrMissingDate = httperr.New(
		httperr.KindInvalidArgument,
		"missing_date",
		"date is required",
	)
	ErrInvalidPartySize = httperr.New(
		httperr.KindInvalidArgument,
		"invalid_party_size",
		"guests must be at least 1",
	)
	ErrNoAvailability = httperr.New(
		httperr.KindNoAvailability,
		"no_availability",
		"No tables available for the selected date and time",
	)
	ErrReservationNotFound = httperr.New(
		httperr.KindNotFound,
		"reservation_not_found",
		"Reservation not found",
	)
	ErrExportDisabled = httperr.New(
		httperr.KindUnavailable,
		"export_disabled",
		"Reservation export is not configured",
	)
)

// ErrSlotTaken is returned by the repository when an insert loses the race
// for a (table, date, timeSlot) or the table vanished under it. It never
// leaves the use case layer.
var ErrSlotTaken = errors.New("reservation: slot already taken")
