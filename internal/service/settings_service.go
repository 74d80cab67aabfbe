package service

import (
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
)

// SettingsUpdate 管理端开关更新，指针区分"未提交"和"显式置 false"
type SettingsUpdate struct {
	MaintenanceMode    *bool `json:"maintenanceMode"`
	AllowRegistrations *bool `json:"allowRegistrations"`
}

type SettingsService struct {
	SettingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{SettingsRepo: settingsRepo}
}

func (s *SettingsService) Get() (*model.Settings, error) {
	return s.SettingsRepo.Get()
}

func (s *SettingsService) Update(update *SettingsUpdate) (*model.Settings, error) {
	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if update.MaintenanceMode != nil {
		settings.MaintenanceMode = *update.MaintenanceMode
	}
	if update.AllowRegistrations != nil {
		settings.AllowRegistrations = *update.AllowRegistrations
	}
	if err := s.SettingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
