package handler

import (
	"errors"

	"resort_manager/constants"
	"resort_manager/database"
	"resort_manager/helper"
	"resort_manager/model"
	"resort_manager/utils"
	"resort_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetBooking(c *fiber.Ctx) error {
	filterInput := new(model.FilterBooking)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Booking{})

	if filterInput.CottageID != 0 {
		condition = condition.Where("cottage_id = ?", filterInput.CottageID)
	}
	if filterInput.CustomerEmail != "" {
		condition = condition.Where("customer_email = ?", filterInput.CustomerEmail)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var bookings []model.Booking
	if err := condition.
		Order("check_in DESC").
		Preload("Cottage").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := database.DB.Preload("Cottage").First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func conflictStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, helper.ErrInvalidDateRange),
		errors.Is(err, helper.ErrCottageConflict),
		errors.Is(err, helper.ErrCustomerConflict):
		return fiber.StatusConflict, true
	}
	return 0, false
}

func CreateBooking(c *fiber.Ctx) error {
	claim, _, authenticated := helper.GetInfoUserFromToken(c)
	if !authenticated {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHENTICATED, errors.New("not authenticated"))
	}

	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse booking input failed"))
	}
	dates := c.Locals("bookingDates").(validate.ParsedBookingDates)

	tx := database.DB.Begin()

	// Lock the cottage row so two concurrent writers for the same cottage
	// serialize on the conflict check below.
	var cottage model.Cottage
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cottage, input.CottageID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// The customer's first booking has no rows a lock could hold, so writers
	// for the same email serialize on an advisory lock instead.
	if err := helper.LockCustomerEmail(tx, input.CustomerEmail); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking := model.Booking{
		Code:          uuid.NewString(),
		CottageID:     cottage.ID,
		UserID:        claim.UserId,
		CheckIn:       dates.CheckIn,
		CheckOut:      dates.CheckOut,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
	}
	if input.IsConfirmed != nil {
		booking.IsConfirmed = *input.IsConfirmed
	}

	if err := helper.ValidateBooking(tx, &booking); err != nil {
		tx.Rollback()
		if status, ok := conflictStatus(err); ok {
			return utils.ErrorResponse(c, status, err.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.Price = helper.CalculateBookingPrice(cottage.PricePerNight, booking.CheckIn, booking.CheckOut)

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func EditBooking(c *fiber.Ctx) error {
	_, _, authenticated := helper.GetInfoUserFromToken(c)
	if !authenticated {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHENTICATED, errors.New("not authenticated"))
	}

	input, ok := c.Locals("inputEditBooking").(model.EditBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse booking input failed"))
	}
	dates := c.Locals("bookingDates").(validate.ParsedBookingDates)
	bookingId := c.Locals("bookingId").(uint)

	tx := database.DB.Begin()

	var booking model.Booking
	if err := tx.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.CottageID != nil {
		booking.CottageID = *input.CottageID
	}
	if input.CheckIn != nil {
		booking.CheckIn = dates.CheckIn
	}
	if input.CheckOut != nil {
		booking.CheckOut = dates.CheckOut
	}
	if input.CustomerName != nil {
		booking.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		booking.CustomerEmail = *input.CustomerEmail
	}
	if input.IsConfirmed != nil {
		booking.IsConfirmed = *input.IsConfirmed
	}

	var cottage model.Cottage
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cottage, booking.CottageID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Lock order matches the create path: cottage row first, then the email.
	if err := helper.LockCustomerEmail(tx, booking.CustomerEmail); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Every update is re-validated and re-priced, never patched blindly.
	if err := helper.ValidateBooking(tx, &booking); err != nil {
		tx.Rollback()
		if status, ok := conflictStatus(err); ok {
			return utils.ErrorResponse(c, status, err.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.Price = helper.CalculateBookingPrice(cottage.PricePerNight, booking.CheckIn, booking.CheckOut)

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	_, _, authenticated := helper.GetInfoUserFromToken(c)
	if !authenticated {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHENTICATED, errors.New("not authenticated"))
	}

	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := database.DB.Where("id IN ?", ids).Delete(&model.Booking{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

// CheckAvailability answers whether a cottage is free for the requested range.
func CheckAvailability(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCheckAvailability").(model.CheckAvailabilityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse availability input failed"))
	}
	dates := c.Locals("bookingDates").(validate.ParsedBookingDates)

	db := database.DB
	var cottage model.Cottage
	if err := db.First(&cottage, input.CottageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	overlapping, err := helper.HasOverlappingBooking(db, cottage.ID, dates.CheckIn, dates.CheckOut)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if overlapping {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"available": false,
			"message":   constants.COTTAGE_UNAVAILABLE,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"available": true,
		"message":   constants.COTTAGE_AVAILABLE,
	})
}
