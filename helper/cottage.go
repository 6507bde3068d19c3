package helper

import (
	"fmt"
	"strconv"
	"strings"

	"resort_manager/model"

	"gorm.io/gorm"
)

// ParseAmenityIDs converts a comma separated id list ("1,3,7") to ids.
func ParseAmenityIDs(csv string) ([]uint, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return []uint{}, nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid amenity id: %s", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// RecomputeCottage refreshes the derived capacity and expense columns from the
// cottage's current amenity set and persists them. Must be called inside the
// same transaction as any amenity association change so no stale derived state
// is observable after the mutating call returns.
func RecomputeCottage(tx *gorm.DB, cottage *model.Cottage) error {
	var amenities []model.Amenity
	if err := tx.Model(cottage).Association("Amenities").Find(&amenities); err != nil {
		return err
	}

	totalCapacity := cottage.BaseCapacity
	expenses := cottage.BaseExpenses
	for _, amenity := range amenities {
		totalCapacity += amenity.AdditionalCapacity
		expenses += amenity.Price
	}

	cottage.TotalCapacity = totalCapacity
	cottage.Expenses = expenses
	cottage.Amenities = amenities

	return tx.Model(&model.Cottage{}).Where("id = ?", cottage.ID).
		Updates(map[string]interface{}{
			"total_capacity": totalCapacity,
			"expenses":       expenses,
		}).Error
}

// RecomputeCottagesByAmenities refreshes every cottage associated with any of
// the given amenities. Used when amenities are edited or deleted.
func RecomputeCottagesByAmenities(tx *gorm.DB, amenityIDs []uint) error {
	if len(amenityIDs) == 0 {
		return nil
	}

	var cottageIDs []uint
	if err := tx.Table("cottage_amenities").
		Distinct("cottage_id").
		Where("amenity_id IN ?", amenityIDs).
		Pluck("cottage_id", &cottageIDs).Error; err != nil {
		return err
	}

	for _, id := range cottageIDs {
		var cottage model.Cottage
		if err := tx.First(&cottage, id).Error; err != nil {
			return err
		}
		if err := RecomputeCottage(tx, &cottage); err != nil {
			return err
		}
	}
	return nil
}
