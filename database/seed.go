package database

import (
	"log"

	"resort_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		Email:    "admin@resort.local",
		Name:     "Administrator",
		Password: hashPassword,
		Active:   true,
		IsStaff:  true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
		return
	}

	amenities := []model.Amenity{
		{Name: "Sauna", AdditionalCapacity: 0, Price: 40, UserID: admin.ID},
		{Name: "Extra bedroom", AdditionalCapacity: 2, Price: 25, UserID: admin.ID},
		{Name: "Hot tub", AdditionalCapacity: 0, Price: 60, UserID: admin.ID},
		{Name: "Sofa bed", AdditionalCapacity: 1, Price: 10, UserID: admin.ID},
	}
	for _, amenity := range amenities {
		if err := db.Where(model.Amenity{Name: amenity.Name, UserID: admin.ID}).FirstOrCreate(&amenity).Error; err != nil {
			log.Println("failed to seed amenity:", amenity.Name, "error:", err)
		}
	}
}
