package controller

import (
	"errors"

	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	AnnouncementService *service.AnnouncementService
}

func NewAnnouncementController(announcementService *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: announcementService}
}

// List godoc
// @Summary 公告列表
// @Description 按发布时间倒序返回全部公告，无需登录
// @Tags 公告
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Announcement} "成功"
// @Router /api/admin/announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	announcements, err := c.AnnouncementService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, announcements)
}

// swagger:model AnnouncementRequest
type AnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create godoc
// @Summary 发布公告
// @Tags 管理后台
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AnnouncementRequest true "公告内容"
// @Success 201 {object} util.Response{data=model.Announcement} "创建成功"
// @Failure 400 {object} util.Response "内容为空"
// @Router /api/admin/announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	announcement, err := c.AnnouncementService.Create(req.Message, claims.Email)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, announcement)
}

// Delete godoc
// @Summary 删除公告
// @Tags 管理后台
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "公告ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "公告不存在"
// @Router /api/admin/announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	err := c.AnnouncementService.Delete(id)
	if errors.Is(err, util.ErrAnnouncementNotFound) {
		util.NotFound(ctx, "公告不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
