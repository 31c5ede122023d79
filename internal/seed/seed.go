package seed

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservation/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
	"github.com/BruksfildServices01/table-reservation/internal/models"
	"github.com/BruksfildServices01/table-reservation/internal/validators"
)

// DefaultFloor is two 2-tops, two 4-tops and one 6-top.
var DefaultFloor = []int{2, 2, 4, 4, 6}

// Tables creates the floor plan, but only into an empty restaurant.
func Tables(ctx context.Context, db *gorm.DB, capacities []int) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Table{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Log.WithField("tables", count).Info("tables already present, skipping floor plan")
		return 0, nil
	}

	repo := repository.NewTableGormRepository(db)
	for _, capacity := range capacities {
		tbl, err := repo.Create(ctx, capacity)
		if err != nil {
			return 0, err
		}
		logger.Log.WithField("tableNumber", tbl.TableNumber).
			WithField("capacity", tbl.Capacity).
			Info("table created")
	}
	return len(capacities), nil
}

type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// Admin creates the account or promotes and re-keys an existing one.
func Admin(ctx context.Context, db *gorm.DB, acc AdminAccount) (*models.User, error) {
	if validators.IsBlank(acc.Email) || acc.Password == "" {
		return nil, errors.New("admin email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(acc.Email)
	tx := db.WithContext(ctx)

	var user models.User
	err = tx.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:         acc.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
		}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		logger.Log.WithField("email", email).Info("admin created")
	case err != nil:
		return nil, err
	default:
		if err := tx.Model(&user).Updates(map[string]any{
			"role":          models.RoleAdmin,
			"password_hash": string(hashed),
		}).Error; err != nil {
			return nil, err
		}
		user.Role = models.RoleAdmin
		logger.Log.WithField("email", email).Info("admin updated")
	}

	return &user, nil
}
