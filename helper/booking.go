package helper

import (
	"errors"
	"sort"
	"time"

	"resort_manager/model"
	"resort_manager/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be later than check-in date")
	ErrCottageConflict  = errors.New("this cottage is already booked for the selected dates")
	ErrCustomerConflict = errors.New("this customer already has a booking in another cottage for the selected dates")
)

// ValidateBooking enforces the date-range and conflict invariants against the
// current store snapshot. Runs inside the caller's transaction before any
// write; a failure blocks the write entirely. The candidate's own id is
// excluded so updates do not conflict with themselves.
func ValidateBooking(tx *gorm.DB, candidate *model.Booking) error {
	if !candidate.CheckOut.After(candidate.CheckIn.Time) {
		return ErrInvalidDateRange
	}

	var cottageOverlaps int64
	if err := tx.Model(&model.Booking{}).
		Where("cottage_id = ?", candidate.CottageID).
		Where("check_in < ? AND check_out > ?", candidate.CheckOut, candidate.CheckIn).
		Where("id != ?", candidate.ID).
		Count(&cottageOverlaps).Error; err != nil {
		return err
	}
	if cottageOverlaps > 0 {
		return ErrCottageConflict
	}

	var customerOverlaps int64
	if err := tx.Model(&model.Booking{}).
		Where("customer_email = ?", candidate.CustomerEmail).
		Where("check_in < ? AND check_out > ?", candidate.CheckOut, candidate.CheckIn).
		Where("id != ?", candidate.ID).
		Count(&customerOverlaps).Error; err != nil {
		return err
	}
	if customerOverlaps > 0 {
		return ErrCustomerConflict
	}

	return nil
}

// LockCustomerEmail serializes booking writers for one customer within the
// current transaction. A row lock cannot cover bookings that do not exist yet,
// so the customer-side conflict check takes a transaction-scoped advisory lock
// keyed on the email instead.
func LockCustomerEmail(tx *gorm.DB, email string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", email).Error
}

// HasOverlappingBooking reports whether any booking on the cottage intersects
// [checkIn, checkOut).
func HasOverlappingBooking(tx *gorm.DB, cottageID uint, checkIn, checkOut utils.CustomDate) (bool, error) {
	var count int64
	err := tx.Model(&model.Booking{}).
		Where("cottage_id = ?", cottageID).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	return count > 0, err
}

// CalculateBookingPrice prices a stay: nightly rate times whole nights, with a
// flat 20% seasonal reduction when either boundary date falls in November or
// March. The discount is tied to the boundary months, not prorated per night.
func CalculateBookingPrice(pricePerNight float64, checkIn, checkOut utils.CustomDate) float64 {
	nights := checkIn.Nights(checkOut)
	price := pricePerNight * float64(nights)

	if isSeasonalMonth(checkIn.Month()) || isSeasonalMonth(checkOut.Month()) {
		price -= price * 0.20
	}

	return price
}

func isSeasonalMonth(m time.Month) bool {
	return m == time.November || m == time.March
}

// AvailabilityGaps sweeps the cottage's bookings in check-in order and returns
// the open date ranges between today and yearEnd. Bookings already ended
// before today only move the cursor through the max operation (a no-op).
func AvailabilityGaps(bookings []model.Booking, today, yearEnd utils.CustomDate) []model.AvailabilityGap {
	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CheckIn.Before(sorted[j].CheckIn.Time)
	})

	gaps := []model.AvailabilityGap{}
	cursor := today

	for _, booking := range sorted {
		if cursor.Before(booking.CheckIn.Time) {
			gaps = append(gaps, model.AvailabilityGap{From: cursor, To: booking.CheckIn})
		}
		cursor = utils.MaxDate(cursor, booking.CheckOut)
	}

	if !cursor.After(yearEnd.Time) {
		gaps = append(gaps, model.AvailabilityGap{From: cursor, To: yearEnd})
	}

	return gaps
}
