package service

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only",
			ExpireTime: time.Hour,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}
}

var testUserSeq int

func createUser(t *testing.T, db *gorm.DB, role model.UserRole) *model.User {
	t.Helper()
	testUserSeq++
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &model.User{
		Name:     fmt.Sprintf("user%d", testUserSeq),
		Email:    fmt.Sprintf("user%d@example.com", testUserSeq),
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func createCourse(t *testing.T, db *gorm.DB, ownerID uint, sectionCount int) *model.Course {
	t.Helper()
	course := &model.Course{
		UserID:      ownerID,
		Educator:    "Ada Lovelace",
		Title:       "Go 实战",
		Category:    "编程",
		Description: "从零到一",
		Price:       model.PriceFree,
	}
	for i := 0; i < sectionCount; i++ {
		course.Sections = append(course.Sections, model.Section{
			Position:    i,
			Title:       fmt.Sprintf("第 %d 章", i+1),
			Description: "章节简介",
			ContentURL:  fmt.Sprintf("/uploads/videos/%d.mp4", i),
			Kind:        model.SectionVideo,
		})
	}
	require.NoError(t, repository.NewCourseRepository(db).Create(course))
	return course
}

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	certificates := NewCertificateService(
		repository.NewCertificateRepository(db),
		enrollmentRepo,
		courseRepo,
		repository.NewUserRepository(db),
	)
	return NewEnrollmentService(
		enrollmentRepo,
		courseRepo,
		repository.NewPaymentRepository(db),
		certificates,
	)
}
