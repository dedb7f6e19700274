package configs

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Issue{}, &entity.IssueImage{},
		&entity.Vote{}, &entity.Comment{},
		&entity.UserProfile{},
		&entity.Rule{},
		&entity.Notification{},
	)
}
