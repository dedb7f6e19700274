package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	Issues []Issue `json:"-"`
	Rules  []Rule  `json:"-"`
}
