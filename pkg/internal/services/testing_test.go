package services

import (
	"path/filepath"
	"testing"

	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "campusvoice.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func createTestStudent(t *testing.T, rollNumber string) models.Account {
	t.Helper()

	account, err := RegisterStudent(models.Account{
		RollNumber: lo.ToPtr(rollNumber),
		Name:       "Test Student",
		Department: "CSE",
		Year:       3,
		Section:    "A",
		Password:   "abcd",
	})
	require.NoError(t, err)

	return account
}
