package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/models"
	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

// Resolver answers availability questions straight from the store.
// Nothing is cached between calls.
type Resolver struct {
	repo domain.Repository
}

func NewResolver(repo domain.Repository) *Resolver {
	return &Resolver{repo: repo}
}

// FindAvailableTable returns the smallest free table that seats the party,
// or nil when there is none.
func (r *Resolver) FindAvailableTable(
	ctx context.Context,
	q domain.AvailabilityQuery,
) (*models.Table, error) {
	return r.findExcluding(ctx, q, nil)
}

func (r *Resolver) findExcluding(
	ctx context.Context,
	q domain.AvailabilityQuery,
	skip map[uint]struct{},
) (*models.Table, error) {

	q = q.Normalized()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	candidates, err := r.repo.ListCandidateTables(ctx, q.PartySize)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	booked, err := r.repo.BookedTableIDs(ctx, q.Date, q.TimeSlot)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		id := candidates[i].ID
		if _, taken := booked[id]; taken {
			continue
		}
		if _, lost := skip[id]; lost {
			continue
		}
		return &candidates[i], nil
	}

	return nil, nil
}

func (r *Resolver) ComputeAvailabilityCount(
	ctx context.Context,
	q domain.AvailabilityQuery,
) (domain.Availability, error) {

	q = q.Normalized()
	if err := q.Validate(); err != nil {
		return domain.Availability{}, err
	}

	candidates, err := r.repo.ListCandidateTables(ctx, q.PartySize)
	if err != nil {
		return domain.Availability{}, err
	}

	booked, err := r.repo.BookedTableIDs(ctx, q.Date, q.TimeSlot)
	if err != nil {
		return domain.Availability{}, err
	}

	out := domain.Availability{Total: len(candidates)}
	for _, t := range candidates {
		if _, taken := booked[t.ID]; taken {
			out.Booked++
		}
	}
	out.Available = out.Total - out.Booked

	return out, nil
}

// TablesWithStatus lists every table by number, flagged when an ACTIVE
// reservation holds it for the slot.
func (r *Resolver) TablesWithStatus(
	ctx context.Context,
	date string,
	timeSlot string,
) ([]domain.TableStatus, error) {

	if validators.IsBlank(date) || validators.IsBlank(timeSlot) {
		return nil, domain.ErrMissingFields
	}
	q := domain.AvailabilityQuery{Date: date, TimeSlot: timeSlot}.Normalized()

	tables, err := r.repo.ListAllTables(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := r.repo.BookedTableIDs(ctx, q.Date, q.TimeSlot)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TableStatus, 0, len(tables))
	for _, t := range tables {
		_, taken := booked[t.ID]
		out = append(out, domain.TableStatus{
			TableID:     t.ID,
			TableNumber: t.TableNumber,
			Capacity:    t.Capacity,
			IsBooked:    taken,
		})
	}

	return out, nil
}
