package model

type Amenity struct {
	DTO
	Name               string  `gorm:"not null" validate:"required" json:"name"`
	AdditionalCapacity int     `gorm:"not null;default:0" validate:"gte=0" json:"additionalCapacity"`
	Price              float64 `gorm:"not null;default:0" validate:"gte=0" json:"price"`
	UserID             uint    `gorm:"not null" json:"userId"`

	Cottages []Cottage `gorm:"many2many:cottage_amenities;" json:"-"`
}

type CreateAmenityInput struct {
	Name               string  `json:"name" validate:"required"`
	AdditionalCapacity int     `json:"additionalCapacity" validate:"gte=0"`
	Price              float64 `json:"price" validate:"gte=0"`
}

type EditAmenityInput struct {
	Name               *string  `json:"name"`
	AdditionalCapacity *int     `json:"additionalCapacity" validate:"omitempty,gte=0"`
	Price              *float64 `json:"price" validate:"omitempty,gte=0"`
}

type FilterAmenity struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
