package table

import (
	"context"

	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type Repository interface {
	// Create numbers the table from the persistent sequence and inserts it
	// in one transaction.
	Create(
		ctx context.Context,
		capacity int,
	) (*models.Table, error)

	// Delete removes the table unless an ACTIVE reservation references it.
	// It returns ErrTableNotFound or ErrTableHasActiveReservations.
	Delete(
		ctx context.Context,
		id uint,
	) error

	List(ctx context.Context) ([]models.Table, error)
}
