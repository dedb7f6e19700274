package services

import (
	"context"
	"fmt"
	"io"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"github.com/Sunatl/mushkiloti-gomea/storage"
)

type IssueImageService struct {
	images *repository.IssueImageRepository
	issues *repository.IssueRepository
	blobs  storage.Storage
}

func NewIssueImageService(images *repository.IssueImageRepository,
	issues *repository.IssueRepository, blobs storage.Storage) *IssueImageService {
	return &IssueImageService{images: images, issues: issues, blobs: blobs}
}

// Create records an already-stored asset reference against the issue.
func (s *IssueImageService) Create(img *entity.IssueImage) error {
	if _, err := s.issues.FindByID(img.IssueID); err != nil {
		return fmt.Errorf("issue: %w", err)
	}
	return s.images.Create(img)
}

// Upload stores the blob first, then records the returned reference.
func (s *IssueImageService) Upload(ctx context.Context, issueID uint, fileName string,
	file io.Reader, size int64, caption string, isBefore bool) (*entity.IssueImage, error) {
	if _, err := s.issues.FindByID(issueID); err != nil {
		return nil, fmt.Errorf("issue: %w", err)
	}

	ref, err := s.blobs.Upload(ctx, "issues", fileName, file, size)
	if err != nil {
		return nil, err
	}

	img := &entity.IssueImage{
		IssueID:  issueID,
		Image:    ref,
		Caption:  caption,
		IsBefore: isBefore,
	}
	if err := s.images.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *IssueImageService) List(issueID uint, out *[]entity.IssueImage) error {
	return s.images.FindAll(issueID, out)
}

func (s *IssueImageService) Get(id uint) (*entity.IssueImage, error) {
	return s.images.FindByID(id)
}

func (s *IssueImageService) Update(id uint, updates map[string]any) (*entity.IssueImage, error) {
	if _, err := s.images.FindByID(id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.images.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.images.FindByID(id)
}

func (s *IssueImageService) Delete(ctx context.Context, id uint) error {
	img, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	// best effort; the row goes away regardless of blob cleanup
	_ = s.blobs.Delete(ctx, img.Image)
	return s.images.Delete(id)
}
