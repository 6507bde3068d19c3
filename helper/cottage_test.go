package helper

import (
	"testing"

	"resort_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmenityIDs(t *testing.T) {
	ids, err := ParseAmenityIDs("1, 3,7")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3, 7}, ids)

	ids, err = ParseAmenityIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseAmenityIDs("1,x")
	assert.Error(t, err)
}

func TestRecomputeCottage(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@resort.local")

	sauna := model.Amenity{Name: "Sauna", AdditionalCapacity: 0, Price: 40, UserID: owner.ID}
	bedroom := model.Amenity{Name: "Extra bedroom", AdditionalCapacity: 2, Price: 25, UserID: owner.ID}
	require.NoError(t, db.Create(&sauna).Error)
	require.NoError(t, db.Create(&bedroom).Error)

	cottage := model.Cottage{
		Name:          "lakeside",
		Slug:          "lakeside",
		Category:      "standard",
		BaseCapacity:  4,
		PricePerNight: 100,
		BaseExpenses:  100,
		UserID:        owner.ID,
	}
	require.NoError(t, db.Create(&cottage).Error)

	t.Run("empty amenity set keeps base values", func(t *testing.T) {
		require.NoError(t, RecomputeCottage(db, &cottage))
		assert.Equal(t, 4, cottage.TotalCapacity)
		assert.Equal(t, 100.0, cottage.Expenses)
	})

	t.Run("totals follow the amenity set and are persisted", func(t *testing.T) {
		require.NoError(t, db.Model(&cottage).Association("Amenities").Replace([]model.Amenity{sauna, bedroom}))
		require.NoError(t, RecomputeCottage(db, &cottage))

		assert.Equal(t, 6, cottage.TotalCapacity)
		assert.Equal(t, 165.0, cottage.Expenses)

		// A fresh read must observe the recomputed columns.
		var reloaded model.Cottage
		require.NoError(t, db.First(&reloaded, cottage.ID).Error)
		assert.Equal(t, 6, reloaded.TotalCapacity)
		assert.Equal(t, 165.0, reloaded.Expenses)
	})

	t.Run("removing amenities restores base values", func(t *testing.T) {
		require.NoError(t, db.Model(&cottage).Association("Amenities").Clear())
		require.NoError(t, RecomputeCottage(db, &cottage))

		var reloaded model.Cottage
		require.NoError(t, db.First(&reloaded, cottage.ID).Error)
		assert.Equal(t, 4, reloaded.TotalCapacity)
		assert.Equal(t, 100.0, reloaded.Expenses)
	})
}

func TestRecomputeCottagesByAmenities(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@resort.local")

	shared := model.Amenity{Name: "Hot tub", AdditionalCapacity: 1, Price: 60, UserID: owner.ID}
	require.NoError(t, db.Create(&shared).Error)

	first := createTestCottage(t, db, owner, "lakeside", 100)
	second := createTestCottage(t, db, owner, "hillside", 150)
	require.NoError(t, db.Model(&first).Association("Amenities").Replace([]model.Amenity{shared}))
	require.NoError(t, db.Model(&second).Association("Amenities").Replace([]model.Amenity{shared}))

	require.NoError(t, db.Model(&model.Amenity{}).Where("id = ?", shared.ID).
		Updates(map[string]interface{}{"additional_capacity": 3, "price": 80.0}).Error)

	require.NoError(t, RecomputeCottagesByAmenities(db, []uint{shared.ID}))

	var cottages []model.Cottage
	require.NoError(t, db.Where("id IN ?", []uint{first.ID, second.ID}).Find(&cottages).Error)
	require.Len(t, cottages, 2)
	for _, cottage := range cottages {
		assert.Equal(t, 7, cottage.TotalCapacity)
		assert.Equal(t, 80.0, cottage.Expenses)
	}
}
