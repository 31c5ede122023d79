package reservation

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type ListMyReservations struct {
	repo domain.Repository
}

func NewListMyReservations(repo domain.Repository) *ListMyReservations {
	return &ListMyReservations{repo: repo}
}

func (uc *ListMyReservations) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {
	return uc.repo.ListForUser(ctx, userID)
}

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Reservation, error) {
	filter.Date = strings.TrimSpace(filter.Date)
	return uc.repo.List(ctx, filter)
}
