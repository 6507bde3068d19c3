package helper

import (
	"testing"
	"time"

	"resort_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFinancialReport(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@resort.local")

	t.Run("empty store reports zeroes", func(t *testing.T) {
		report, err := BuildFinancialReport(db, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.TotalExpenses)
		assert.Equal(t, 0.0, report.NetProfit)
	})

	t.Run("income and expenses aggregate per owner", func(t *testing.T) {
		bigExpense := model.Amenity{Name: "Sauna", Price: 50, UserID: owner.ID}
		smallExpense := model.Amenity{Name: "Sofa bed", Price: 10, UserID: owner.ID}
		require.NoError(t, db.Create(&bigExpense).Error)
		require.NoError(t, db.Create(&smallExpense).Error)

		first := model.Cottage{
			Name: "lakeside", Slug: "lakeside", Category: "standard",
			BaseCapacity: 4, PricePerNight: 100, BaseExpenses: 100, UserID: owner.ID,
		}
		second := model.Cottage{
			Name: "hillside", Slug: "hillside", Category: "luxury",
			BaseCapacity: 6, PricePerNight: 100, BaseExpenses: 100, UserID: owner.ID,
		}
		require.NoError(t, db.Create(&first).Error)
		require.NoError(t, db.Create(&second).Error)

		require.NoError(t, db.Model(&first).Association("Amenities").Replace([]model.Amenity{bigExpense, smallExpense}))
		require.NoError(t, db.Model(&second).Association("Amenities").Replace([]model.Amenity{smallExpense}))
		require.NoError(t, RecomputeCottage(db, &first))
		require.NoError(t, RecomputeCottage(db, &second))

		createTestBooking(t, db, second, "b-1", "alice@example.com",
			date(2025, time.October, 1), date(2025, time.October, 5))
		require.NoError(t, db.Model(&model.Booking{}).Where("code = ?", "b-1").
			Update("price", 400.0).Error)

		report, err := BuildFinancialReport(db, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, 400.0, report.TotalIncome)
		assert.Equal(t, 270.0, report.TotalExpenses)
		assert.Equal(t, 130.0, report.NetProfit)
	})

	t.Run("another owner's figures are not visible", func(t *testing.T) {
		stranger := createTestOwner(t, db, "stranger@resort.local")
		report, err := BuildFinancialReport(db, stranger.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.TotalExpenses)
	})
}
