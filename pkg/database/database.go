package database

import (
	"fmt"
	"log"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.PlatformAdmin{},
		&model.Course{},
		&model.Section{},
		&model.Enrollment{},
		&model.SectionProgress{},
		&model.CoursePayment{},
		&model.Certificate{},
		&model.Announcement{},
		&model.Settings{},
	)
}

// EnsureDefaultAdmin 按用户名幂等写入管理员种子账号
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Username == "" {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.PlatformAdmin{
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: string(hashed),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "password"}),
	}).Create(admin).Error
}
