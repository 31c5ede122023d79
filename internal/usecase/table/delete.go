package table

import (
	"context"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/table"
)

// DeleteTable refuses while an ACTIVE reservation holds the table. Past
// reservations keep pointing at the removed id.
type DeleteTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteTable(repo domain.Repository, audit *audit.Dispatcher) *DeleteTable {
	return &DeleteTable{repo: repo, audit: audit}
}

func (uc *DeleteTable) Execute(
	ctx context.Context,
	adminID uint,
	tableID uint,
) error {

	if err := uc.repo.Delete(ctx, tableID); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "table_deleted",
			Entity:   "table",
			EntityID: &tableID,
		})
	}

	return nil
}
