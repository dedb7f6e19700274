package entity

import (
	"gorm.io/gorm"
)

type Rule struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`

	Order    int  `gorm:"not null;default:0" json:"order"`
	IsActive bool `gorm:"default:true" json:"isActive"`
}
