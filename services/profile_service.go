package services

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
)

const leaderboardLimit = 50

type ProfileService struct {
	profiles *repository.ProfileRepository
}

func NewProfileService(profiles *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Me returns the caller's profile, creating it on first access.
func (s *ProfileService) Me(userID uint) (*entity.UserProfile, error) {
	return s.profiles.FirstOrCreate(userID)
}

func (s *ProfileService) List(out *[]entity.UserProfile) error {
	return s.profiles.FindAll(out)
}

func (s *ProfileService) Get(id uint) (*entity.UserProfile, error) {
	return s.profiles.FindByID(id)
}

// UpdateMe edits the caller's own editable fields. Points, level and the
// counters are derived state and never accepted from the client.
func (s *ProfileService) UpdateMe(userID uint, updates map[string]any) (*entity.UserProfile, error) {
	profile, err := s.profiles.FirstOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.profiles.Update(profile.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.profiles.FindByID(profile.ID)
}

// Update edits editable fields on any profile by id. The original surface
// gates this on authentication only, not ownership; kept as is.
func (s *ProfileService) Update(id uint, updates map[string]any) (*entity.UserProfile, error) {
	if _, err := s.profiles.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.profiles.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.profiles.FindByID(id)
}

func (s *ProfileService) Leaderboard(out *[]entity.UserProfile) error {
	return s.profiles.Leaderboard(leaderboardLimit, out)
}
