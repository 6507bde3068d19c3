package model

type User struct {
	DTO
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"default:true" json:"isActive"`
	IsStaff  bool   `gorm:"default:false" json:"isStaff"`

	Cottages  []Cottage `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Amenities []Amenity `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
