package handler

import (
	"errors"

	"resort_manager/constants"
	"resort_manager/database"
	"resort_manager/helper"
	"resort_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetFinancialReport aggregates income and expenses for the caller's own
// cottages only; there is no cross-owner view.
func GetFinancialReport(c *fiber.Ctx) error {
	claim, _, authenticated := helper.GetInfoUserFromToken(c)
	if !authenticated {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHENTICATED, errors.New("not authenticated"))
	}

	report, err := helper.BuildFinancialReport(database.DB, claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}
