package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pagedRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestApplyPagination(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&pagedRow{}))

	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Create(&pagedRow{Name: fmt.Sprintf("row-%d", i)}).Error)
	}

	t.Run("limit and page select the window", func(t *testing.T) {
		var rows []pagedRow
		query := ApplyPagination(db.Model(&pagedRow{}).Order("id"), Ptr(2), Ptr(2))
		require.NoError(t, query.Find(&rows).Error)

		require.Len(t, rows, 2)
		assert.Equal(t, "row-3", rows[0].Name)
		assert.Equal(t, "row-4", rows[1].Name)
	})

	t.Run("nil limit returns everything", func(t *testing.T) {
		var rows []pagedRow
		query := ApplyPagination(db.Model(&pagedRow{}).Order("id"), nil, nil)
		require.NoError(t, query.Find(&rows).Error)
		assert.Len(t, rows, 5)
	})

	t.Run("zero limit is ignored", func(t *testing.T) {
		var rows []pagedRow
		query := ApplyPagination(db.Model(&pagedRow{}).Order("id"), Ptr(0), Ptr(1))
		require.NoError(t, query.Find(&rows).Error)
		assert.Len(t, rows, 5)
	})
}
