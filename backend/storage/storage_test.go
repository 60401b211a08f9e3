package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/Akshaya719/LanguageLearningHub/backend/models"
	"github.com/Akshaya719/LanguageLearningHub/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStorage(t *testing.T) *DatabaseStorage {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.MigrateDB(db))

	t.Cleanup(func() { sqlDB.Close() })
	return NewDatabaseStorage(db)
}

func createTestUser(t *testing.T, store *DatabaseStorage, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		DisplayName:  "Test User",
	}
	require.NoError(t, store.UpsertUser(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}
