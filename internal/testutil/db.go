package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservation/internal/db"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func SeedTables(t *testing.T, gdb *gorm.DB, capacities ...int) []models.Table {
	t.Helper()

	tables := make([]models.Table, 0, len(capacities))
	for i, c := range capacities {
		tbl := models.Table{TableNumber: i + 1, Capacity: c}
		require.NoError(t, gdb.Create(&tbl).Error)
		tables = append(tables, tbl)
	}
	return tables
}

func SeedUser(t *testing.T, gdb *gorm.DB, email, role string) models.User {
	t.Helper()

	u := models.User{
		Name:         "Test " + role,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}
