package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lin-avraham/Pizza2/database"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory sqlite database with the schema
// and seed users in place.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedDefaultUsers(db))
	return db
}

func userID(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	u, err := repository.NewUserRepository(db).FindByUsername(context.Background(), username)
	require.NoError(t, err)
	return u.ID
}

type recordedEvent struct {
	Event string
	Order models.Order
}

type fakeEvents struct {
	events []recordedEvent
}

func (f *fakeEvents) Publish(event string, payload interface{}) {
	order, _ := payload.(models.Order)
	f.events = append(f.events, recordedEvent{Event: event, Order: order})
}
