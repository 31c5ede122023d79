package reservation

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/infra/slotlock"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	resolver *Resolver
	locker   slotlock.Locker
	audit    *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	resolver *Resolver,
	locker slotlock.Locker,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in domain.CreateReservationInput,
) (*models.Reservation, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}
	q := in.Query()

	// --------------------------------------------------
	// Slot lock (best effort, the unique index decides)
	// --------------------------------------------------
	if uc.locker != nil {
		release, err := uc.locker.Acquire(ctx, slotlock.Key(q.Date, q.TimeSlot))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Log.WithError(err).
				WithField("date", q.Date).
				WithField("timeSlot", q.TimeSlot).
				Warn("slot lock unavailable, continuing without it")
		} else {
			defer release()
		}
	}

	// --------------------------------------------------
	// Assign, retrying past tables lost to a concurrent insert
	// --------------------------------------------------
	lost := map[uint]struct{}{}
	for {
		table, err := uc.resolver.findExcluding(ctx, q, lost)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, domain.ErrNoAvailability
		}

		res := &models.Reservation{
			UserID:   in.UserID,
			TableID:  table.ID,
			Date:     q.Date,
			TimeSlot: q.TimeSlot,
			Guests:   q.PartySize,
			Status:   string(domain.InitialStatus()),
		}

		err = uc.repo.CreateReservation(ctx, res)
		if errors.Is(err, domain.ErrSlotTaken) {
			lost[table.ID] = struct{}{}
			continue
		}
		if err != nil {
			return nil, err
		}

		if res.Table == nil {
			res.Table = table
		}

		uc.dispatch(in.UserID, res)
		return res, nil
	}
}

func (uc *CreateReservation) dispatch(userID uint, res *models.Reservation) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"tableId":  res.TableID,
			"date":     res.Date,
			"timeSlot": res.TimeSlot,
			"guests":   res.Guests,
		},
	})
}
