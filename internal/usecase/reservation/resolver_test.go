package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/httperr"
)

func TestFindAvailableTablePicksSmallestFit(t *testing.T) {
	f := newFixture(t, 2, 2, 4, 6)
	ctx := context.Background()

	tbl, err := f.resolver.FindAvailableTable(ctx, query(2))
	require.NoError(t, err)
	require.NotNil(t, tbl)
	assert.Equal(t, 2, tbl.Capacity)
	assert.Equal(t, 1, tbl.TableNumber)

	tbl, err = f.resolver.FindAvailableTable(ctx, query(3))
	require.NoError(t, err)
	require.NotNil(t, tbl)
	assert.Equal(t, 4, tbl.Capacity)

	tbl, err = f.resolver.FindAvailableTable(ctx, query(7))
	require.NoError(t, err)
	assert.Nil(t, tbl)
}

func TestFindAvailableTableSkipsBookedTables(t *testing.T) {
	f := newFixture(t, 2, 2, 4, 6)
	ctx := context.Background()

	f.book(t, 1, 2)
	f.book(t, 1, 2)

	tbl, err := f.resolver.FindAvailableTable(ctx, query(2))
	require.NoError(t, err)
	require.NotNil(t, tbl)
	assert.Equal(t, 4, tbl.Capacity)

	other := query(2)
	other.TimeSlot = "20:00-22:00"
	tbl, err = f.resolver.FindAvailableTable(ctx, other)
	require.NoError(t, err)
	require.NotNil(t, tbl)
	assert.Equal(t, 1, tbl.TableNumber)
}

func TestFindAvailableTableValidatesQuery(t *testing.T) {
	f := newFixture(t, 2)

	_, err := f.resolver.FindAvailableTable(context.Background(), query(0))
	assert.True(t, httperr.IsBusiness(err, "invalid_party_size"))

	_, err = f.resolver.FindAvailableTable(context.Background(), domain.AvailabilityQuery{PartySize: 2})
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidArgument))
}

func TestAvailabilityCountMatchesAssignment(t *testing.T) {
	f := newFixture(t, 2, 2, 4, 6)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		avail, err := f.resolver.ComputeAvailabilityCount(ctx, query(2))
		require.NoError(t, err)

		assert.Equal(t, 4, avail.Total)
		assert.Equal(t, i, avail.Booked)
		assert.Equal(t, avail.Total-avail.Booked, avail.Available)

		tbl, err := f.resolver.FindAvailableTable(ctx, query(2))
		require.NoError(t, err)
		assert.Equal(t, avail.Available > 0, tbl != nil)

		f.book(t, 1, 2)
	}

	avail, err := f.resolver.ComputeAvailabilityCount(ctx, query(2))
	require.NoError(t, err)
	assert.Equal(t, domain.Availability{Available: 0, Total: 4, Booked: 4}, avail)

	avail, err = f.resolver.ComputeAvailabilityCount(ctx, query(5))
	require.NoError(t, err)
	assert.Equal(t, domain.Availability{Available: 0, Total: 1, Booked: 1}, avail)
}

func TestTablesWithStatus(t *testing.T) {
	f := newFixture(t, 6, 2, 4)
	ctx := context.Background()

	f.book(t, 1, 2)

	statuses, err := f.resolver.TablesWithStatus(ctx, testDate, testSlot)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{statuses[0].TableNumber, statuses[1].TableNumber, statuses[2].TableNumber})
	assert.False(t, statuses[0].IsBooked)
	assert.True(t, statuses[1].IsBooked, "capacity 2 table is the smallest fit")
	assert.False(t, statuses[2].IsBooked)

	_, err = f.resolver.TablesWithStatus(ctx, "", testSlot)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}
