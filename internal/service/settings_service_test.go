package service

import (
	"testing"

	"course_market_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestSettingsDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.MaintenanceMode)
	assert.True(t, settings.AllowRegistrations)

	// 重复读取复用同一条单例记录
	again, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	updated, err := svc.Update(&SettingsUpdate{MaintenanceMode: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.MaintenanceMode)
	// 未提交的开关保持默认值
	assert.True(t, updated.AllowRegistrations)

	updated, err = svc.Update(&SettingsUpdate{AllowRegistrations: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, updated.MaintenanceMode)
	assert.False(t, updated.AllowRegistrations)
}

func TestAnnouncements(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repository.NewAnnouncementRepository(db))

	_, err := svc.Create("   ", "admin@example.com")
	assert.Error(t, err)

	created, err := svc.Create("系统将于周五升级", "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", created.CreatedBy)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(created.ID))
	err = svc.Delete(created.ID)
	assert.Error(t, err)
}
