package model

import "resort_manager/utils"

type Booking struct {
	DTO
	Code          string           `gorm:"uniqueIndex;not null" json:"code"`
	CottageID     uint             `gorm:"not null;index" json:"cottageId"`
	Cottage       Cottage          `gorm:"foreignKey:CottageID;constraint:OnDelete:CASCADE" json:"cottage"`
	UserID        uint             `gorm:"not null" json:"userId"`
	CheckIn       utils.CustomDate `gorm:"type:date;not null" json:"checkIn"`
	CheckOut      utils.CustomDate `gorm:"type:date;not null" json:"checkOut"`
	CustomerName  string           `gorm:"not null" json:"customerName"`
	CustomerEmail string           `gorm:"not null;index" json:"customerEmail"`
	// Computed at save time, never taken from the client.
	Price       float64 `gorm:"not null;default:0" json:"price"`
	IsConfirmed bool    `gorm:"default:false" json:"isConfirmed"`
}

type CreateBookingInput struct {
	CottageID     uint   `json:"cottageId" validate:"required"`
	CheckIn       string `json:"checkIn" validate:"required"`
	CheckOut      string `json:"checkOut" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	IsConfirmed   *bool  `json:"isConfirmed"`
}

type EditBookingInput struct {
	CottageID     *uint   `json:"cottageId"`
	CheckIn       *string `json:"checkIn"`
	CheckOut      *string `json:"checkOut"`
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	IsConfirmed   *bool   `json:"isConfirmed"`
}

type FilterBooking struct {
	Pagination
	CottageID     uint   `json:"cottageId"`
	CustomerEmail string `json:"customerEmail"`
}

type CheckAvailabilityInput struct {
	CottageID uint   `json:"cottageId" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
}

// AvailabilityGap is a maximal open date range with no booking coverage.
type AvailabilityGap struct {
	From utils.CustomDate `json:"from"`
	To   utils.CustomDate `json:"to"`
}

type FinancialReport struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
}
