package middleware

import (
	"net/http"

	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaintenanceMiddleware 维护模式下对学员/教师侧接口返回 503。
// 配置读取失败时放行：门控失效优于整站不可用。
func MaintenanceMiddleware(settingsRepo *repository.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingsRepo.Get()
		if err != nil {
			logger.Log.Warn("settings read failed, maintenance gate skipped", zap.Error(err))
			c.Next()
			return
		}
		if settings.MaintenanceMode {
			util.Error(c, http.StatusServiceUnavailable, "Platform is under maintenance, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RegistrationMiddleware 注册开关只拦注册，不影响已注册用户登录
func RegistrationMiddleware(settingsRepo *repository.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingsRepo.Get()
		if err != nil {
			logger.Log.Warn("settings read failed, registration gate skipped", zap.Error(err))
			c.Next()
			return
		}
		if !settings.AllowRegistrations {
			util.Forbidden(c, "New registrations are currently disabled")
			c.Abort()
			return
		}
		c.Next()
	}
}
