package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
)

// CancelOwnReservation cancels an ACTIVE reservation of the caller. A wrong
// owner, an unknown id and an already cancelled row all read as not found.
type CancelOwnReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelOwnReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelOwnReservation {
	return &CancelOwnReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelOwnReservation) Execute(
	ctx context.Context,
	userID uint,
	reservationID uint,
) error {

	ok, err := uc.repo.CancelActiveForUser(ctx, reservationID, userID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReservationNotFound
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "reservation_cancelled",
			Entity:   "reservation",
			EntityID: &reservationID,
		})
	}

	return nil
}
