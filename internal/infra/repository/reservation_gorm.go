package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *ReservationGormRepository) ListCandidateTables(
	ctx context.Context,
	minCapacity int,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("capacity >= ?", minCapacity).
		Order("capacity ASC").
		Order("table_number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *ReservationGormRepository) ListAllTables(
	ctx context.Context,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Order("table_number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// --------------------------------------------------
// Ledger (read)
// --------------------------------------------------

func (r *ReservationGormRepository) BookedTableIDs(
	ctx context.Context,
	date string,
	timeSlot string,
) (map[uint]struct{}, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("date = ? AND time_slot = ? AND status = ?", date, timeSlot, string(domain.StatusActive)).
		Pluck("table_id", &ids).Error; err != nil {
		return nil, err
	}

	booked := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		booked[id] = struct{}{}
	}
	return booked, nil
}

func (r *ReservationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReservationGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Table")

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}

	var list []models.Reservation
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Ledger (write)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Share lock keeps the table from being deleted under the insert.
		var tbl models.Table
		err := tx.
			Clauses(clause.Locking{Strength: "SHARE"}).
			First(&tbl, res.TableID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSlotTaken
		}
		if err != nil {
			return err
		}

		if err := tx.Create(res).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSlotTaken
			}
			return err
		}

		res.Table = &tbl
		return nil
	})
}

func (r *ReservationGormRepository) CancelActiveForUser(
	ctx context.Context,
	id uint,
	userID uint,
	now time.Time,
) (bool, error) {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, string(domain.StatusActive)).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReservationGormRepository) CancelAny(
	ctx context.Context,
	id uint,
	now time.Time,
) (bool, error) {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": gorm.Expr("COALESCE(cancelled_at, ?)", now),
			"updated_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) (bool, error) {

	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
