package repository

import (
	"errors"
	"time"

	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get 读取平台配置单例，首次访问时懒创建默认值
func (r *SettingsRepository) Get() (*model.Settings, error) {
	var settings model.Settings
	err := r.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.Settings{
			MaintenanceMode:    false,
			AllowRegistrations: true,
			UpdatedAt:          time.Now(),
		}
		if err := r.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(settings *model.Settings) error {
	settings.UpdatedAt = time.Now()
	return r.DB.Save(settings).Error
}
