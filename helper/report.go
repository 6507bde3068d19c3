package helper

import (
	"resort_manager/model"

	"gorm.io/gorm"
)

// BuildFinancialReport aggregates income and expenses for one owner's
// cottages. Missing sums count as zero.
func BuildFinancialReport(db *gorm.DB, userID uint) (model.FinancialReport, error) {
	var report model.FinancialReport

	if err := db.Raw(`
        SELECT COALESCE(SUM(bookings.price), 0)
        FROM bookings
        JOIN cottages ON cottages.id = bookings.cottage_id
        WHERE cottages.user_id = ?
    `, userID).Scan(&report.TotalIncome).Error; err != nil {
		return report, err
	}

	if err := db.Raw(`
        SELECT COALESCE(SUM(expenses), 0)
        FROM cottages
        WHERE user_id = ?
    `, userID).Scan(&report.TotalExpenses).Error; err != nil {
		return report, err
	}

	report.NetProfit = report.TotalIncome - report.TotalExpenses
	return report, nil
}
