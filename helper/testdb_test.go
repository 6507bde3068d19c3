package helper

import (
	"testing"

	"resort_manager/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Amenity{},
		&model.Cottage{},
		&model.Booking{},
	)
	require.NoError(t, err)

	return db
}

func createTestOwner(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()

	user := model.User{
		Email:    email,
		Name:     "Test Owner",
		Password: "irrelevant",
		Active:   true,
		IsStaff:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestCottage(t *testing.T, db *gorm.DB, owner model.User, name string, pricePerNight float64) model.Cottage {
	t.Helper()

	cottage := model.Cottage{
		Name:          name,
		Slug:          name,
		Category:      "standard",
		BaseCapacity:  4,
		PricePerNight: pricePerNight,
		UserID:        owner.ID,
	}
	require.NoError(t, db.Create(&cottage).Error)
	return cottage
}
