package service

import (
	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AdminService 管理员登录与用户/课程治理
type AdminService struct {
	AdminRepo *repository.AdminRepository
	UserRepo  *repository.UserRepository
	Cfg       *config.Config
}

func NewAdminService(adminRepo *repository.AdminRepository, userRepo *repository.UserRepository, cfg *config.Config) *AdminService {
	return &AdminService{
		AdminRepo: adminRepo,
		UserRepo:  userRepo,
		Cfg:       cfg,
	}
}

// Login 凭据校验与普通用户一致，但令牌携带 admin 角色声明
func (s *AdminService) Login(identifier, password string) (string, *model.PlatformAdmin, error) {
	admin, err := s.AdminRepo.FindByUsernameOrEmail(identifier)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateAdminJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	admin.Password = ""
	return token, admin, nil
}

func (s *AdminService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *AdminService) DeleteUser(id uint) error {
	return s.UserRepo.Delete(id)
}
