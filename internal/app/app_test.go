package app

import (
	"path/filepath"
	"testing"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSeedDefaultsOnFreshDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "app.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Admin: config.AdminConfig{
			Username: "root",
			Email:    "root@example.com",
			Password: "super-secret",
		},
	}

	// release 模式、未带任何迁移参数，管理员依然要被补种
	require.NoError(t, seedDefaults(db, cfg))

	var count int64
	require.NoError(t, db.Model(&model.PlatformAdmin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, seedDefaults(db, cfg))
	require.NoError(t, db.Model(&model.PlatformAdmin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
