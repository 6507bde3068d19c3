package model

type Cottage struct {
	DTO
	Slug          string  `gorm:"uniqueIndex" json:"slug"`
	Name          string  `gorm:"not null" validate:"required" json:"name"`
	Category      string  `gorm:"not null;default:standard" json:"category"`
	BaseCapacity  int     `gorm:"not null" validate:"gt=0" json:"baseCapacity"`
	PricePerNight float64 `gorm:"not null" validate:"gt=0" json:"pricePerNight"`
	BaseExpenses  float64 `gorm:"not null;default:0" validate:"gte=0" json:"baseExpenses"`

	// Derived columns, recomputed on every amenity-set change.
	TotalCapacity int     `json:"totalCapacity"`
	Expenses      float64 `json:"expenses"`

	UserID    uint      `gorm:"not null" json:"userId"`
	Amenities []Amenity `gorm:"many2many:cottage_amenities;" json:"amenities"`
	Bookings  []Booking `gorm:"foreignKey:CottageID;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateCottageInput struct {
	Name          string  `json:"name" validate:"required"`
	Category      string  `json:"category" validate:"omitempty,oneof=standard luxury"`
	BaseCapacity  int     `json:"baseCapacity" validate:"required,gt=0"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	BaseExpenses  float64 `json:"baseExpenses" validate:"gte=0"`
	AmenityIDs    []uint  `json:"amenityIds"`
}

type EditCottageInput struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category" validate:"omitempty,oneof=standard luxury"`
	BaseCapacity  *int     `json:"baseCapacity" validate:"omitempty,gt=0"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	BaseExpenses  *float64 `json:"baseExpenses" validate:"omitempty,gte=0"`
	AmenityIDs    *[]uint  `json:"amenityIds"`
}

type FilterCottage struct {
	Pagination
	// Comma separated amenity ids, e.g. "1,3,7".
	Amenities string `json:"amenities"`
	Category  string `json:"category"`
	SearchKey string `json:"searchKey"`
}
