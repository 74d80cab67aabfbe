package security

import (
	"net/http"
	"sync"
	"time"

	"course_market_backend/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 按配置白名单放行跨域请求，白名单外的 Origin 不回显任何 CORS 头
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept, Origin, Cache-Control, X-Requested-With, X-CSRF-Token")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Secure 常规安全响应头
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}

// client 单个来源 IP 的限流状态
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const sweepInterval = time.Minute

// RateLimiter 按来源 IP 限流，配置缺省时退化为宽松限额。
// 超过三个窗口不活跃的条目由后台定时清理。
func RateLimiter(cfg *config.RateLimitConfig) gin.HandlerFunc {
	maxRequests := cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}

	clients := make(map[string]*client)
	var mu sync.Mutex

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > expiry {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	limit := rate.Every(window / time.Duration(maxRequests))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, maxRequests)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		mu.Unlock()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
