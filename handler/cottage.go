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

func GetCottage(c *fiber.Ctx) error {
	filterInput := new(model.FilterCottage)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	baseQuery := db.Model(&model.Cottage{})

	if filterInput.Amenities != "" {
		amenityIDs, err := helper.ParseAmenityIDs(filterInput.Amenities)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		baseQuery = baseQuery.
			Joins("JOIN cottage_amenities ON cottage_amenities.cottage_id = cottages.id").
			Where("cottage_amenities.amenity_id IN ?", amenityIDs).
			Distinct("cottages.*")
	}
	if filterInput.Category != "" {
		baseQuery = baseQuery.Where("LOWER(category) = ?", strings.ToLower(filterInput.Category))
	}
	if filterInput.SearchKey != "" {
		baseQuery = baseQuery.Where("LOWER(cottages.name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	countQuery := baseQuery.Session(&gorm.Session{})
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	baseQuery = utils.ApplyPagination(baseQuery, filterInput.Limit, filterInput.Page)

	var cottages []model.Cottage
	if err := baseQuery.
		Order("cottages.name DESC").
		Preload("Amenities").
		Find(&cottages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       cottages,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetCottageById(c *fiber.Ctx) error {
	cottageId := c.Locals("inputId").(int)

	var cottage model.Cottage
	if err := database.DB.Preload("Amenities").First(&cottage, cottageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cottage)
}

func GetCottageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "slug is required", nil)
	}

	var cottage model.Cottage
	if err := database.DB.
		Preload("Amenities").
		Where("slug = ?", slug).
		First(&cottage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cottage)
}

func CreateCottage(c *fiber.Ctx) error {
	claim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateCottage").(model.CreateCottageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cottage input failed"))
	}

	tx := database.DB.Begin()

	newCottage := new(model.Cottage)
	copier.Copy(&newCottage, input)
	newCottage.Amenities = nil
	newCottage.UserID = claim.UserId
	newCottage.Slug = helper.GenerateUniqueCottageSlug(tx, input.Name)

	if err := tx.Create(&newCottage).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []model.Amenity
		if err := tx.Where("id IN ?", input.AmenityIDs).Find(&amenities).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if len(amenities) != len(input.AmenityIDs) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AMENITY_NOT_FOUND, errors.New("unknown amenity id"))
		}
		if err := tx.Model(&newCottage).Association("Amenities").Replace(amenities); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	}

	// Derived columns are written in the same transaction as the association.
	if err := helper.RecomputeCottage(tx, newCottage); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusCreated, newCottage)
}

func EditCottage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputEditCottage").(model.EditCottageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse cottage input failed"))
	}
	cottageId := c.Locals("cottageId").(uint)

	tx := database.DB.Begin()

	var cottage model.Cottage
	if err := tx.First(&cottage, cottageId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		cottage.Name = *input.Name
		cottage.Slug = helper.GenerateUniqueCottageSlug(tx, *input.Name)
	}
	if input.Category != nil {
		cottage.Category = *input.Category
	}
	if input.BaseCapacity != nil {
		cottage.BaseCapacity = *input.BaseCapacity
	}
	if input.PricePerNight != nil {
		cottage.PricePerNight = *input.PricePerNight
	}
	if input.BaseExpenses != nil {
		cottage.BaseExpenses = *input.BaseExpenses
	}

	if err := tx.Save(&cottage).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if input.AmenityIDs != nil {
		var amenities []model.Amenity
		if len(*input.AmenityIDs) > 0 {
			if err := tx.Where("id IN ?", *input.AmenityIDs).Find(&amenities).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			if len(amenities) != len(*input.AmenityIDs) {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AMENITY_NOT_FOUND, errors.New("unknown amenity id"))
			}
		}
		if err := tx.Model(&cottage).Association("Amenities").Replace(amenities); err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	// Base values or amenity set may have changed; totals follow before commit.
	if err := helper.RecomputeCottage(tx, &cottage); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()

	var updated model.Cottage
	if err := database.DB.Preload("Amenities").First(&updated, cottageId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func DeleteCottage(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	tx := database.DB.Begin()

	// Deleting a cottage releases its bookings and association rows.
	if err := tx.Where("cottage_id IN ?", ids).Delete(&model.Booking{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Exec("DELETE FROM cottage_amenities WHERE cottage_id IN ?", ids).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&model.Cottage{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx.Commit()
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

// GetCottageAvailability returns the open date gaps from today to year end.
func GetCottageAvailability(c *fiber.Ctx) error {
	cottageId := c.Locals("inputId").(int)

	db := database.DB
	var cottage model.Cottage
	if err := db.First(&cottage, cottageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COTTAGE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	if err := db.Where("cottage_id = ?", cottage.ID).
		Order("check_in ASC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	today := utils.Today()
	gaps := helper.AvailabilityGaps(bookings, today, today.EndOfYear())

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"availableDates": gaps,
	})
}
