package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) WithTx(tx *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

// FirstOrCreate returns the user's profile, creating it on first access.
// The unique index on user_id is the guard against double creation.
func (r *ProfileRepository) FirstOrCreate(userID uint) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.Where(entity.UserProfile{UserID: userID}).
		Attrs(entity.UserProfile{Level: 1}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	if err := r.db.Preload("User").First(&profile, profile.ID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindAll(out *[]entity.UserProfile) error {
	return r.db.Preload("User").Find(out).Error
}

func (r *ProfileRepository) FindByID(id uint) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.UserProfile{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProfileRepository) Leaderboard(limit int, out *[]entity.UserProfile) error {
	return r.db.Preload("User").Order("points DESC").Limit(limit).Find(out).Error
}
