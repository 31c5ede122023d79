package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
)

// ======================================================
// ADMIN CANCEL
// ======================================================

// AdminCancelReservation cancels any reservation. Cancelling a cancelled
// row succeeds and keeps the first cancelledAt.
type AdminCancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminCancelReservation {
	return &AdminCancelReservation{repo: repo, audit: audit}
}

func (uc *AdminCancelReservation) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
) error {

	ok, err := uc.repo.CancelAny(ctx, reservationID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReservationNotFound
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "reservation_admin_cancelled",
			Entity:   "reservation",
			EntityID: &reservationID,
		})
	}
	return nil
}

// ======================================================
// ADMIN DELETE
// ======================================================

type AdminDeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminDeleteReservation {
	return &AdminDeleteReservation{repo: repo, audit: audit}
}

func (uc *AdminDeleteReservation) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
) error {

	ok, err := uc.repo.DeleteReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReservationNotFound
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "reservation_deleted",
			Entity:   "reservation",
			EntityID: &reservationID,
		})
	}
	return nil
}
