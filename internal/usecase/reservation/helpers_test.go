package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservation/internal/models"
	"github.com/BruksfildServices01/table-reservation/internal/testutil"
)

const (
	testDate = "2025-06-01"
	testSlot = "18:00-20:00"
)

type fixture struct {
	db       *gorm.DB
	repo     *repository.ReservationGormRepository
	resolver *Resolver
	create   *CreateReservation
	tables   []models.Table
}

func newFixture(t *testing.T, capacities ...int) *fixture {
	t.Helper()

	gdb := testutil.NewDB(t)
	repo := repository.NewReservationGormRepository(gdb)
	resolver := NewResolver(repo)

	return &fixture{
		db:       gdb,
		repo:     repo,
		resolver: resolver,
		create:   NewCreateReservation(repo, resolver, nil, nil),
		tables:   testutil.SeedTables(t, gdb, capacities...),
	}
}

func (f *fixture) book(t *testing.T, userID uint, guests int) *models.Reservation {
	t.Helper()

	res, err := f.create.Execute(context.Background(), domain.CreateReservationInput{
		UserID:   userID,
		Date:     testDate,
		TimeSlot: testSlot,
		Guests:   guests,
	})
	require.NoError(t, err)
	return res
}

func query(guests int) domain.AvailabilityQuery {
	return domain.AvailabilityQuery{Date: testDate, TimeSlot: testSlot, PartySize: guests}
}
