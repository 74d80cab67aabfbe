package repository

import (
	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// FindByUsernameOrEmail 管理员可用用户名或邮箱登录
func (r *AdminRepository) FindByUsernameOrEmail(identifier string) (*model.PlatformAdmin, error) {
	var admin model.PlatformAdmin
	err := r.DB.Where("username = ? OR email = ?", identifier, identifier).First(&admin).Error
	return &admin, err
}
