package table

import (
	"context"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/table"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type CreateTable struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateTable(repo domain.Repository, audit *audit.Dispatcher) *CreateTable {
	return &CreateTable{repo: repo, audit: audit}
}

func (uc *CreateTable) Execute(
	ctx context.Context,
	adminID uint,
	capacity int,
) (*models.Table, error) {

	if err := domain.ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	tbl, err := uc.repo.Create(ctx, capacity)
	if err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "table_created",
			Entity:   "table",
			EntityID: &tbl.ID,
			Metadata: map[string]any{
				"tableNumber": tbl.TableNumber,
				"capacity":    tbl.Capacity,
			},
		})
	}

	return tbl, nil
}
