package service

import (
	"errors"
	"strings"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"gorm.io/gorm"
)

type AnnouncementService struct {
	AnnouncementRepo *repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{AnnouncementRepo: announcementRepo}
}

func (s *AnnouncementService) List() ([]model.Announcement, error) {
	return s.AnnouncementRepo.FindAll()
}

func (s *AnnouncementService) Create(message, createdBy string) (*model.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.New("公告内容不能为空")
	}
	a := &model.Announcement{
		Message:   message,
		CreatedBy: createdBy,
	}
	if err := s.AnnouncementRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) Delete(id uint) error {
	err := s.AnnouncementRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrAnnouncementNotFound
	}
	return err
}
