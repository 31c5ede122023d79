package table

import (
	"context"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/table"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type ListTables struct {
	repo domain.Repository
}

func NewListTables(repo domain.Repository) *ListTables {
	return &ListTables{repo: repo}
}

func (uc *ListTables) Execute(ctx context.Context) ([]models.Table, error) {
	return uc.repo.List(ctx)
}
