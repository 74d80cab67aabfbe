package controller

import (
	"errors"

	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// CourseAnalytics godoc
// @Summary 课程分析
// @Description 课程归属教师查看学员进度、章节到达率和近期活跃
// @Tags 分析
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseAnalytics} "成功"
// @Failure 403 {object} util.Response "非课程归属教师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/courseanalytics/{courseId} [get]
func (c *AnalyticsController) CourseAnalytics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID, ok := parseID(ctx, "courseId")
	if !ok {
		return
	}

	analytics, err := c.AnalyticsService.ForCourse(courseID, claims.UserID)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "课程不存在")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, "仅课程归属教师可查看分析数据")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, analytics)
	}
}
