package handler

import (
	"errors"
	"strings"

	"resort_manager/constants"
	"resort_manager/database"
	"resort_manager/helper"
	"resort_manager/model"
	"resort_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetAmenity(c *fiber.Ctx) error {
	filterInput := new(model.FilterAmenity)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Amenity{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var amenities []model.Amenity
	if err := condition.Order("name DESC").Find(&amenities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       amenities,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetAmenityById(c *fiber.Ctx) error {
	amenityId := c.Locals("inputId").(int)

	var amenity model.Amenity
	if err := database.DB.First(&amenity, amenityId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AMENITY_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, amenity)
}

func CreateAmenity(c *fiber.Ctx) error {
	claim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateAmenity").(model.CreateAmenityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse amenity input failed"))
	}

	amenity := new(model.Amenity)
	copier.Copy(&amenity, input)
	amenity.UserID = claim.UserId

	if err := database.DB.Create(&amenity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, amenity)
}

func EditAmenity(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputEditAmenity").(model.EditAmenityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse amenity input failed"))
	}
	amenityId := c.Locals("amenityId").(uint)

	tx := database.DB.Begin()

	var amenity model.Amenity
	if err := tx.First(&amenity, amenityId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AMENITY_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		amenity.Name = *input.Name
	}
	if input.AdditionalCapacity != nil {
		amenity.AdditionalCapacity = *input.AdditionalCapacity
	}
	if input.Price != nil {
		amenity.Price = *input.Price
	}

	if err := tx.Save(&amenity).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	// Capacity or price change must flow into every cottage carrying the
	// amenity before the call returns.
	if input.AdditionalCapacity != nil || input.Price != nil {
		if err := helper.RecomputeCottagesByAmenities(tx, []uint{amenity.ID}); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, amenity)
}

func DeleteAmenity(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	tx := database.DB.Begin()

	// Remember which cottages are touched before the association rows go away.
	var cottageIDs []uint
	if err := tx.Table("cottage_amenities").
		Distinct("cottage_id").
		Where("amenity_id IN ?", ids).
		Pluck("cottage_id", &cottageIDs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Exec("DELETE FROM cottage_amenities WHERE amenity_id IN ?", ids).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Where("id IN ?", ids).Delete(&model.Amenity{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for _, id := range cottageIDs {
		var cottage model.Cottage
		if err := tx.First(&cottage, id).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if err := helper.RecomputeCottage(tx, &cottage); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
