package service

import (
	"testing"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, database.EnsureDefaultAdmin(db, &config.AdminConfig{
		Username: "root",
		Email:    "root@example.com",
		Password: "super-secret",
	}))
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	seedAdmin(t, db)
	svc := NewAdminService(repository.NewAdminRepository(db), repository.NewUserRepository(db), testConfig(t))

	// 用户名和邮箱都可以作为登录标识
	token, admin, err := svc.Login("root", "super-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "root", admin.Username)

	_, _, err = svc.Login("root@example.com", "super-secret")
	require.NoError(t, err)

	// 令牌携带 admin 角色声明
	claims, err := util.ParseJWT(token, testConfig(t).JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, model.Admin, claims.Role)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	seedAdmin(t, db)
	svc := NewAdminService(repository.NewAdminRepository(db), repository.NewUserRepository(db), testConfig(t))

	_, _, err := svc.Login("root", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "super-secret")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAdminSeedIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedAdmin(t, db)
	seedAdmin(t, db)

	var count int64
	require.NoError(t, db.Model(&model.PlatformAdmin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewAdminRepository(db), repository.NewUserRepository(db), testConfig(t))
	user := createUser(t, db, model.Student)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, svc.DeleteUser(user.ID))
	err = svc.DeleteUser(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
