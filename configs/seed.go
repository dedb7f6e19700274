package configs

import (
	"log"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username:  "admin",
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default categories and rules.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Roads", Icon: "road"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Water Supply", Icon: "droplet"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Electricity", Icon: "zap"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Sanitation", Icon: "trash"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Public Transport", Icon: "bus"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Other", Icon: "more-horizontal"})

	db.FirstOrCreate(&entity.Rule{}, entity.Rule{
		Title:       "Describe the problem precisely",
		Description: "Include the street address and what exactly is broken.",
		Order:       1,
	})
	db.FirstOrCreate(&entity.Rule{}, entity.Rule{
		Title:       "One report per problem",
		Description: "Vote for an existing issue instead of reporting a duplicate.",
		Order:       2,
	})
	db.FirstOrCreate(&entity.Rule{}, entity.Rule{
		Title:       "Be respectful",
		Description: "Comments that insult other residents or officials are removed.",
		Order:       3,
	})

	log.Println("lookup tables seeded")
	return nil
}
