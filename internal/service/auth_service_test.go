package service

import (
	"testing"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig(t))

	user := &model.User{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "password123",
		Role:     model.Student,
	}
	require.NoError(t, svc.Register(user))
	assert.NotZero(t, user.ID)
	// 落库的是哈希而不是明文
	assert.NotEqual(t, "password123", user.Password)

	token, logged, err := svc.Login("zhangsan@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.Password)

	claims, err := util.ParseJWT(token, testConfig(t).JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig(t))

	first := &model.User{Name: "A", Email: "dup@example.com", Password: "password123", Role: model.Student}
	require.NoError(t, svc.Register(first))

	second := &model.User{Name: "B", Email: "dup@example.com", Password: "password456", Role: model.Teacher}
	err := svc.Register(second)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), testConfig(t))

	require.NoError(t, svc.Register(&model.User{
		Name: "A", Email: "a@example.com", Password: "password123", Role: model.Student,
	}))

	// 密码错误和邮箱不存在返回同一个错误
	_, _, err := svc.Login("a@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
