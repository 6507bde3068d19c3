package validate

import (
	"errors"
	"strconv"

	"resort_manager/constants"
	"resort_manager/model"
	"resort_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAmenity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAmenityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateAmenity", input)
		return c.Next()
	}
}

func EditAmenity(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditAmenityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputEditAmenity", input)
		c.Locals("amenityId", uint(valueKey))
		return c.Next()
	}
}
