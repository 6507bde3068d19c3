package validate

import (
	"errors"
	"strconv"

	"resort_manager/constants"
	"resort_manager/model"
	"resort_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// ParsedBookingDates carries the date fields already parsed from the body.
type ParsedBookingDates struct {
	CheckIn  utils.CustomDate
	CheckOut utils.CustomDate
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		checkIn, err := utils.ParseCustomDate(input.CheckIn)
		if err != nil {
			return utils.ErrorResponse(c, 400, "checkIn must be YYYY-MM-DD", err)
		}
		checkOut, err := utils.ParseCustomDate(input.CheckOut)
		if err != nil {
			return utils.ErrorResponse(c, 400, "checkOut must be YYYY-MM-DD", err)
		}

		c.Locals("inputCreateBooking", input)
		c.Locals("bookingDates", ParsedBookingDates{CheckIn: checkIn, CheckOut: checkOut})
		return c.Next()
	}
}

func EditBooking(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		var dates ParsedBookingDates
		if input.CheckIn != nil {
			parsed, err := utils.ParseCustomDate(*input.CheckIn)
			if err != nil {
				return utils.ErrorResponse(c, 400, "checkIn must be YYYY-MM-DD", err)
			}
			dates.CheckIn = parsed
		}
		if input.CheckOut != nil {
			parsed, err := utils.ParseCustomDate(*input.CheckOut)
			if err != nil {
				return utils.ErrorResponse(c, 400, "checkOut must be YYYY-MM-DD", err)
			}
			dates.CheckOut = parsed
		}

		c.Locals("inputEditBooking", input)
		c.Locals("bookingDates", dates)
		c.Locals("bookingId", uint(valueKey))
		return c.Next()
	}
}

func CheckAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckAvailabilityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		checkIn, err := utils.ParseCustomDate(input.CheckIn)
		if err != nil {
			return utils.ErrorResponse(c, 400, "checkIn must be YYYY-MM-DD", err)
		}
		checkOut, err := utils.ParseCustomDate(input.CheckOut)
		if err != nil {
			return utils.ErrorResponse(c, 400, "checkOut must be YYYY-MM-DD", err)
		}

		c.Locals("inputCheckAvailability", input)
		c.Locals("bookingDates", ParsedBookingDates{CheckIn: checkIn, CheckOut: checkOut})
		return c.Next()
	}
}
