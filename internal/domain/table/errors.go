package table

import (
	"fmt"

	"github.com/BruksfildServices01/table-reservation/internal/httperr"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

var (
	ErrInvalidCapacity = httperr.New(
		httperr.KindInvalidArgument,
		"invalid_capacity",
		fmt.Sprintf("capacity must be between %d and %d", models.MinTableCapacity, models.MaxTableCapacity),
	)
	ErrTableNotFound = httperr.New(
		httperr.KindNotFound,
		"table_not_found",
		"Table not found",
	)
	ErrTableHasActiveReservations = httperr.New(
		httperr.KindConflict,
		"table_has_active_reservations",
		"Cannot delete a table with active reservations",
	)
)
