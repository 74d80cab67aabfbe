package repository

import (
	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) FindAll() ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
