package util

import (
	"testing"
	"time"

	"course_market_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests-only"

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Role: model.Teacher, Email: "t@example.com"}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
	assert.Equal(t, "t@example.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Role: model.Student}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "another-secret-entirely-0123456789")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Role: model.Student}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(100))
}
