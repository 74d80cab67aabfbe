package controller

import (
	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// Get godoc
// @Summary 平台配置
// @Description 读取维护模式与注册开关的当前值
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Settings} "成功"
// @Router /api/admin/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.SettingsService.Get()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// Update godoc
// @Summary 更新平台配置
// @Description 切换维护模式或注册开关，未提交的开关保持不变
// @Tags 管理后台
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SettingsUpdate true "要更新的开关"
// @Success 200 {object} util.Response{data=model.Settings} "成功"
// @Router /api/admin/settings [post]
func (c *SettingsController) Update(ctx *gin.Context) {
	var update service.SettingsUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings, err := c.SettingsService.Update(&update)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}
