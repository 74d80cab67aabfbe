package app

import (
	"course_market_backend/docs"
	"course_market_backend/internal/config"
	"course_market_backend/internal/middleware"
	"course_market_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（无需登录，不受维护模式影响）
	router.GET("/api/health", c.health.HealthCheck)
	router.GET("/api/certificates/verify/:serial", c.enrollment.VerifyCertificate)

	// 2. 学员/教师侧路由，维护模式下整体返回 503
	user := router.Group("/api/user")
	user.Use(middleware.MaintenanceMiddleware(repos.settings))
	{
		// 注册额外受注册开关门控，登录不受影响
		user.POST("/register", middleware.RegistrationMiddleware(repos.settings), c.auth.Register)
		user.POST("/login", c.auth.Login)

		user.GET("/getallcourses", c.course.ListCourses)
		user.GET("/getcourse/:courseid", c.course.GetCourse)

		authorized := user.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
		{
			authorized.GET("/profile", c.auth.GetProfile)

			// 教师侧
			authorized.POST("/addcourse", c.course.CreateCourse)
			authorized.GET("/getallcoursesteacher", c.course.ListOwnCourses)
			authorized.PATCH("/editcourse/:courseId", c.course.UpdateCourse)
			authorized.DELETE("/deletecourse/:courseid", c.course.DeleteCourse)
			authorized.GET("/courseanalytics/:courseId", c.analytics.CourseAnalytics)

			// 学员侧
			authorized.POST("/enrolledcourse/:courseid", c.enrollment.Enroll)
			authorized.GET("/coursecontent/:courseid", c.enrollment.FetchContent)
			authorized.POST("/completemodule", c.enrollment.CompleteSection)
			authorized.GET("/getallcoursesuser", c.enrollment.ListEnrolledCourses)
			authorized.GET("/certificate/:courseid", c.enrollment.GetCertificate)
		}
	}

	// 3. 管理后台路由，不受维护模式门控
	admin := router.Group("/api/admin")
	{
		admin.POST("/login", c.admin.Login)
		// 公告列表对所有访客开放，前端首页直接读这里
		admin.GET("/announcements", c.announcement.List)

		authorized := admin.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
		{
			authorized.GET("/getallusers", c.admin.GetAllUsers)
			authorized.GET("/getallcourses", c.admin.GetAllCourses)
			authorized.DELETE("/deletecourse/:courseid", c.admin.DeleteCourse)
			authorized.PATCH("/editcourse/:courseId", c.admin.EditCourse)
			authorized.DELETE("/deleteuser/:userid", c.admin.DeleteUser)
			authorized.GET("/analytics", c.admin.Analytics)

			authorized.POST("/announcements", c.announcement.Create)
			authorized.DELETE("/announcements/:id", c.announcement.Delete)

			authorized.GET("/settings", c.settings.Get)
			authorized.POST("/settings", c.settings.Update)
		}
	}
}
