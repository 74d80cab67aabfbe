package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-unit-tests-only",
			ExpireTime: time.Hour,
		},
	}
}

func setSettings(t *testing.T, repo *repository.SettingsRepository, maintenance, allowRegistrations bool) {
	t.Helper()
	settings, err := repo.Get()
	require.NoError(t, err)
	settings.MaintenanceMode = maintenance
	settings.AllowRegistrations = allowRegistrations
	require.NoError(t, repo.Save(settings))
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestRegistrationGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	settingsRepo := repository.NewSettingsRepository(db)

	router := gin.New()
	router.POST("/register", RegistrationMiddleware(settingsRepo), ok)
	router.POST("/login", ok)

	// 默认允许注册
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// 关闭注册后，注册被拒但登录不受影响
	setSettings(t, settingsRepo, false, false)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	settingsRepo := repository.NewSettingsRepository(db)

	router := gin.New()
	router.GET("/gated", MaintenanceMiddleware(settingsRepo), ok)
	router.GET("/open", ok)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	setSettings(t, settingsRepo, true, true)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// 开关随请求重新读取，关掉维护模式立即恢复
	setSettings(t, settingsRepo, false, true)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	router := gin.New()
	router.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID})
	})

	// 无令牌
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 伪造令牌
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 有效令牌，Header 和查询参数两种携带方式
	user := &model.User{Role: model.Student, Email: "s@example.com"}
	user.ID = 42
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type failingActivityRepo struct {
	called chan uint
}

func (r *failingActivityRepo) UpdateLastSeen(userID uint) error {
	r.called <- userID
	return errors.New("db closed")
}

func TestActivityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	repo := &failingActivityRepo{called: make(chan uint, 1)}

	router := gin.New()
	router.GET("/me", AuthMiddleware(cfg), ActivityMiddleware(repo), ok)

	user := &model.User{Role: model.Student, Email: "s@example.com"}
	user.ID = 7
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	// 活跃时间更新失败只记日志，请求本身不受影响
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case id := <-repo.called:
		assert.EqualValues(t, 7, id)
	case <-time.After(time.Second):
		t.Fatal("UpdateLastSeen was not called")
	}
}

func TestAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	router := gin.New()
	router.GET("/admin", AuthMiddleware(cfg), AdminMiddleware(), ok)

	// 普通用户令牌进管理端被拒
	student := &model.User{Role: model.Student, Email: "s@example.com"}
	student.ID = 1
	token, err := util.GenerateJWT(student, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员令牌放行
	admin := &model.PlatformAdmin{Username: "root", Email: "root@example.com"}
	admin.ID = 1
	adminToken, err := util.GenerateAdminJWT(admin, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
