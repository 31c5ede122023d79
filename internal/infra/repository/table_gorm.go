package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	resdomain "github.com/BruksfildServices01/table-reservation/internal/domain/reservation"
	domain "github.com/BruksfildServices01/table-reservation/internal/domain/table"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) Create(
	ctx context.Context,
	capacity int,
) (*models.Table, error) {

	var tbl models.Table
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq models.TableSequence
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", models.TableNumberSequence).
			First(&seq).Error; err != nil {
			return err
		}

		var highest int
		if err := tx.
			Model(&models.Table{}).
			Select("COALESCE(MAX(table_number), 0)").
			Scan(&highest).Error; err != nil {
			return err
		}

		next := max(seq.Value, highest) + 1

		if err := tx.
			Model(&seq).
			Update("value", next).Error; err != nil {
			return err
		}

		tbl = models.Table{TableNumber: next, Capacity: capacity}
		return tx.Create(&tbl).Error
	})
	if err != nil {
		return nil, err
	}
	return &tbl, nil
}

func (r *TableGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tbl models.Table
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tbl, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTableNotFound
		}
		if err != nil {
			return err
		}

		var active int64
		if err := tx.
			Model(&models.Reservation{}).
			Where("table_id = ? AND status = ?", id, string(resdomain.StatusActive)).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrTableHasActiveReservations
		}

		return tx.Delete(&tbl).Error
	})
}

func (r *TableGormRepository) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Order("table_number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Compile-time check
var _ domain.Repository = (*TableGormRepository)(nil)
