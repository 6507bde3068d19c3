package helper

import (
	"testing"
	"time"

	"resort_manager/model"
	"resort_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) utils.CustomDate {
	return utils.NewCustomDate(year, month, day)
}

func createTestBooking(t *testing.T, db *gorm.DB, cottage model.Cottage, code, email string, checkIn, checkOut utils.CustomDate) model.Booking {
	t.Helper()

	booking := model.Booking{
		Code:          code,
		CottageID:     cottage.ID,
		UserID:        cottage.UserID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		CustomerName:  "Guest",
		CustomerEmail: email,
		Price:         100,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func TestCalculateBookingPrice(t *testing.T) {
	t.Run("four october nights at 100", func(t *testing.T) {
		price := CalculateBookingPrice(100, date(2025, time.October, 1), date(2025, time.October, 5))
		assert.Equal(t, 400.0, price)
	})

	t.Run("doubling the nights doubles the base price", func(t *testing.T) {
		short := CalculateBookingPrice(80, date(2025, time.June, 1), date(2025, time.June, 4))
		long := CalculateBookingPrice(80, date(2025, time.June, 1), date(2025, time.June, 7))
		assert.Equal(t, short*2, long)
	})

	t.Run("november check-in gets the flat 20 percent off", func(t *testing.T) {
		price := CalculateBookingPrice(100, date(2025, time.November, 1), date(2025, time.November, 5))
		assert.Equal(t, 320.0, price)
	})

	t.Run("march check-out gets the flat 20 percent off", func(t *testing.T) {
		// Only the boundary month matters, most nights are in February.
		price := CalculateBookingPrice(100, date(2025, time.February, 20), date(2025, time.March, 2))
		assert.Equal(t, 800.0, price)
	})

	t.Run("deterministic and non-negative", func(t *testing.T) {
		a := CalculateBookingPrice(55.5, date(2025, time.March, 1), date(2025, time.March, 8))
		b := CalculateBookingPrice(55.5, date(2025, time.March, 1), date(2025, time.March, 8))
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0.0)
	})
}

func TestValidateBooking(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@resort.local")
	cottage := createTestCottage(t, db, owner, "lakeside", 100)
	other := createTestCottage(t, db, owner, "hillside", 150)

	createTestBooking(t, db, cottage, "b-1", "alice@example.com",
		date(2025, time.July, 10), date(2025, time.July, 15))

	t.Run("check-out must be after check-in", func(t *testing.T) {
		candidate := model.Booking{
			CottageID:     cottage.ID,
			CheckIn:       date(2025, time.August, 5),
			CheckOut:      date(2025, time.August, 5),
			CustomerEmail: "bob@example.com",
		}
		assert.ErrorIs(t, ValidateBooking(db, &candidate), ErrInvalidDateRange)
	})

	t.Run("overlap on the same cottage is rejected", func(t *testing.T) {
		candidate := model.Booking{
			CottageID:     cottage.ID,
			CheckIn:       date(2025, time.July, 12),
			CheckOut:      date(2025, time.July, 20),
			CustomerEmail: "bob@example.com",
		}
		assert.ErrorIs(t, ValidateBooking(db, &candidate), ErrCottageConflict)
	})

	t.Run("adjacent booking starting at the other's check-out succeeds", func(t *testing.T) {
		candidate := model.Booking{
			CottageID:     cottage.ID,
			CheckIn:       date(2025, time.July, 15),
			CheckOut:      date(2025, time.July, 20),
			CustomerEmail: "bob@example.com",
		}
		assert.NoError(t, ValidateBooking(db, &candidate))
	})

	t.Run("same customer overlapping on another cottage is rejected", func(t *testing.T) {
		candidate := model.Booking{
			CottageID:     other.ID,
			CheckIn:       date(2025, time.July, 12),
			CheckOut:      date(2025, time.July, 14),
			CustomerEmail: "alice@example.com",
		}
		assert.ErrorIs(t, ValidateBooking(db, &candidate), ErrCustomerConflict)
	})

	t.Run("changing the email onto an overlapping customer is rejected", func(t *testing.T) {
		existing := createTestBooking(t, db, other, "b-3", "dave@example.com",
			date(2025, time.July, 12), date(2025, time.July, 14))

		// alice already holds July 10-15 on the first cottage.
		existing.CustomerEmail = "alice@example.com"
		assert.ErrorIs(t, ValidateBooking(db, &existing), ErrCustomerConflict)
	})

	t.Run("update does not conflict with itself", func(t *testing.T) {
		existing := createTestBooking(t, db, other, "b-2", "carol@example.com",
			date(2025, time.September, 1), date(2025, time.September, 5))

		existing.CheckOut = date(2025, time.September, 6)
		assert.NoError(t, ValidateBooking(db, &existing))
	})
}

func TestHasOverlappingBooking(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@resort.local")
	cottage := createTestCottage(t, db, owner, "lakeside", 100)
	createTestBooking(t, db, cottage, "b-1", "alice@example.com",
		date(2025, time.July, 10), date(2025, time.July, 15))

	overlapping, err := HasOverlappingBooking(db, cottage.ID, date(2025, time.July, 14), date(2025, time.July, 16))
	require.NoError(t, err)
	assert.True(t, overlapping)

	overlapping, err = HasOverlappingBooking(db, cottage.ID, date(2025, time.July, 15), date(2025, time.July, 16))
	require.NoError(t, err)
	assert.False(t, overlapping)
}

func TestAvailabilityGaps(t *testing.T) {
	today := date(2025, time.January, 1)
	yearEnd := date(2025, time.December, 31)

	t.Run("single booking splits the year in two", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2025, time.January, 10), CheckOut: date(2025, time.January, 15)},
		}
		gaps := AvailabilityGaps(bookings, today, yearEnd)

		require.Len(t, gaps, 2)
		assert.Equal(t, date(2025, time.January, 1), gaps[0].From)
		assert.Equal(t, date(2025, time.January, 10), gaps[0].To)
		assert.Equal(t, date(2025, time.January, 15), gaps[1].From)
		assert.Equal(t, date(2025, time.December, 31), gaps[1].To)
	})

	t.Run("no bookings yields one gap to year end", func(t *testing.T) {
		gaps := AvailabilityGaps(nil, today, yearEnd)
		require.Len(t, gaps, 1)
		assert.Equal(t, today, gaps[0].From)
		assert.Equal(t, yearEnd, gaps[0].To)
	})

	t.Run("booking straddling today moves the cursor", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2024, time.December, 28), CheckOut: date(2025, time.January, 4)},
		}
		gaps := AvailabilityGaps(bookings, today, yearEnd)
		require.Len(t, gaps, 1)
		assert.Equal(t, date(2025, time.January, 4), gaps[0].From)
	})

	t.Run("booking fully in the past is a no-op", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2024, time.June, 1), CheckOut: date(2024, time.June, 5)},
		}
		gaps := AvailabilityGaps(bookings, today, yearEnd)
		require.Len(t, gaps, 1)
		assert.Equal(t, today, gaps[0].From)
		assert.Equal(t, yearEnd, gaps[0].To)
	})

	t.Run("unsorted input still yields ordered non-overlapping gaps", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2025, time.August, 1), CheckOut: date(2025, time.August, 10)},
			{CheckIn: date(2025, time.March, 5), CheckOut: date(2025, time.March, 9)},
			{CheckIn: date(2025, time.May, 20), CheckOut: date(2025, time.May, 25)},
		}
		gaps := AvailabilityGaps(bookings, today, yearEnd)

		require.Len(t, gaps, 4)
		for i := range gaps {
			assert.True(t, gaps[i].From.Before(gaps[i].To.Time))
			if i > 0 {
				assert.False(t, gaps[i].From.Before(gaps[i-1].To.Time))
			}
		}
	})

	t.Run("idempotent for the same inputs", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2025, time.April, 1), CheckOut: date(2025, time.April, 8)},
		}
		first := AvailabilityGaps(bookings, today, yearEnd)
		second := AvailabilityGaps(bookings, today, yearEnd)
		assert.Equal(t, first, second)
	})

	t.Run("no trailing gap when bookings run past year end", func(t *testing.T) {
		bookings := []model.Booking{
			{CheckIn: date(2025, time.January, 1), CheckOut: date(2026, time.January, 2)},
		}
		gaps := AvailabilityGaps(bookings, today, yearEnd)
		assert.Empty(t, gaps)
	})
}
