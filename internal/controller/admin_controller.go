package controller

import (
	"errors"

	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	AdminService     *service.AdminService
	CourseService    *service.CourseService
	AnalyticsService *service.AnalyticsService
}

func NewAdminController(adminService *service.AdminService, courseService *service.CourseService, analyticsService *service.AnalyticsService) *AdminController {
	return &AdminController{
		AdminService:     adminService,
		CourseService:    courseService,
		AnalyticsService: analyticsService,
	}
}

// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 管理员登录
// @Description 使用用户名或邮箱登录管理后台
// @Tags 管理后台
// @Accept  json
// @Produce  json
// @Param   body body AdminLoginRequest true "管理员凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "凭据错误"
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, admin, err := c.AdminService.Login(req.Identifier, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// GetAllUsers godoc
// @Summary 用户列表
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User} "成功"
// @Router /api/admin/getallusers [get]
func (c *AdminController) GetAllUsers(ctx *gin.Context) {
	users, err := c.AdminService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetAllCourses godoc
// @Summary 课程列表（管理端）
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/admin/getallcourses [get]
func (c *AdminController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// DeleteCourse godoc
// @Summary 删除课程（管理端）
// @Description 管理员可删除任意课程
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseid path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/deletecourse/{courseid} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	if err := c.CourseService.DeleteCourse(ctx.Request.Context(), claims.UserID, true, id); err != nil {
		writeCourseMutationError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// EditCourse godoc
// @Summary 更新课程（管理端）
// @Description 管理员更新任意课程的元信息
// @Tags 管理后台
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "课程ID"
// @Param   body body service.CourseUpdate true "要更新的字段"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/editcourse/{courseId} [patch]
func (c *AdminController) EditCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "courseId")
	if !ok {
		return
	}

	var update service.CourseUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(ctx.Request.Context(), claims.UserID, true, id, &update)
	if err != nil {
		writeCourseMutationError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteUser godoc
// @Summary 删除用户
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Param   userid path int true "用户ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/admin/deleteuser/{userid} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "userid")
	if !ok {
		return
	}

	err := c.AdminService.DeleteUser(id)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx, "用户不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// Analytics godoc
// @Summary 平台分析
// @Description 用户数、课程数、报名数与活跃用户数
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlatformAnalytics} "成功"
// @Router /api/admin/analytics [get]
func (c *AdminController) Analytics(ctx *gin.Context) {
	analytics, err := c.AnalyticsService.Platform()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
