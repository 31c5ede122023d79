package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type Repository interface {
	// -------- Tables --------

	// ListCandidateTables returns tables seating at least minCapacity,
	// smallest first, then by table number.
	ListCandidateTables(
		ctx context.Context,
		minCapacity int,
	) ([]models.Table, error)

	ListAllTables(ctx context.Context) ([]models.Table, error)

	// -------- Ledger (read) --------

	BookedTableIDs(
		ctx context.Context,
		date string,
		timeSlot string,
	) (map[uint]struct{}, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)

	List(
		ctx context.Context,
		filter Filter,
	) ([]models.Reservation, error)

	// -------- Ledger (write) --------

	// CreateReservation inserts an ACTIVE row. It returns ErrSlotTaken when
	// the slot is already held on that table or the table no longer exists.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// CancelActiveForUser flips one ACTIVE row owned by userID.
	// It reports whether a row changed.
	CancelActiveForUser(
		ctx context.Context,
		id uint,
		userID uint,
		now time.Time,
	) (bool, error)

	// CancelAny marks the row CANCELLED whatever its status, keeping an
	// existing cancelledAt. It reports whether the row exists.
	CancelAny(
		ctx context.Context,
		id uint,
		now time.Time,
	) (bool, error)

	DeleteReservation(
		ctx context.Context,
		id uint,
	) (bool, error)
}
