package database

import (
	"testing"

	"github.com/lin-avraham/Pizza2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDefaultUsersIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDefaultUsers(db))
	require.NoError(t, SeedDefaultUsers(db))

	for _, su := range defaultUsers {
		var count int64
		require.NoError(t, db.Model(&models.User{}).Where("username = ?", su.Username).Count(&count).Error)
		assert.Equal(t, int64(1), count, su.Username)

		var user models.User
		require.NoError(t, db.Where("username = ?", su.Username).First(&user).Error)
		assert.Equal(t, su.Role, user.Role)
		assert.NotEqual(t, su.Password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(su.Password)))
	}
}

func TestSeedKeepsExistingAccount(t *testing.T) {
	db := setupTestDB(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("changed"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", PasswordHash: string(hashed), Role: models.RoleAdmin}).Error)

	require.NoError(t, SeedDefaultUsers(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changed")))

	var total int64
	require.NoError(t, db.Model(&models.User{}).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}
