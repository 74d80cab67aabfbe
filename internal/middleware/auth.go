package middleware

import (
	"strings"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// AdminMiddleware 管理端路由只认令牌里的 admin 角色声明
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if claims.Role != model.Admin {
			util.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			// 异步更新，不阻塞主流程
			go func(userID uint) {
				if err := repo.UpdateLastSeen(userID); err != nil {
					logger.Log.Warn("last seen update failed", zap.Uint("user", userID), zap.Error(err))
				}
			}(claims.UserID)
		}
		c.Next()
	}
}
