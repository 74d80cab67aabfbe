package controller

import (
	"errors"

	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService  *service.EnrollmentService
	CertificateService *service.CertificateService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService, certificateService *service.CertificateService) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService:  enrollmentService,
		CertificateService: certificateService,
	}
}

// Enroll godoc
// @Summary 报名课程
// @Description 携模拟支付信息报名课程；重复报名返回 200 且 enrolled=false
// @Tags 报名
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseid path int true "课程ID"
// @Param   body body service.PaymentInput true "支付信息"
// @Success 200 {object} util.Response{data=service.EnrollResult} "成功或已报名"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/enrolledcourse/{courseid} [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	var payment service.PaymentInput
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.EnrollmentService.Enroll(claims.UserID, courseID, &payment)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx, "课程不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// FetchContent godoc
// @Summary 课程内容
// @Description 已报名学员查看章节列表和自己的学习进度
// @Tags 报名
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseid path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseContent} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "课程不存在或未报名"
// @Router /api/user/coursecontent/{courseid} [get]
func (c *EnrollmentController) FetchContent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	content, err := c.EnrollmentService.FetchContent(claims.UserID, courseID)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "课程不存在")
	case errors.Is(err, util.ErrNotEnrolled):
		util.NotFound(ctx, "尚未报名该课程")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, content)
	}
}

// swagger:model CompleteSectionRequest
type CompleteSectionRequest struct {
	CourseID     uint `json:"courseId" binding:"required"`
	SectionIndex *int `json:"sectionIndex" binding:"required"`
}

// CompleteSection godoc
// @Summary 标记章节完成
// @Description 为当前学员追加一条章节完成标记
// @Tags 报名
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CompleteSectionRequest true "课程与章节下标"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "未报名或参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/completemodule [post]
func (c *EnrollmentController) CompleteSection(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if *req.SectionIndex < 0 {
		util.BadRequest(ctx, "章节下标不能为负数")
		return
	}

	err := c.EnrollmentService.CompleteSection(claims.UserID, req.CourseID, *req.SectionIndex)
	switch {
	case errors.Is(err, util.ErrNotEnrolled):
		util.BadRequest(ctx, "尚未报名该课程")
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "课程不存在")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, gin.H{"completed": req.SectionIndex})
	}
}

// ListEnrolledCourses godoc
// @Summary 我报名的课程
// @Tags 报名
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/getallcoursesuser [get]
func (c *EnrollmentController) ListEnrolledCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.EnrollmentService.ListEnrolledCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCertificate godoc
// @Summary 获取完课证书
// @Description 完课学员获取服务端签发的证书
// @Tags 证书
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseid path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CertificateView} "成功"
// @Failure 400 {object} util.Response "课程尚未完成"
// @Failure 404 {object} util.Response "课程不存在或未报名"
// @Router /api/user/certificate/{courseid} [get]
func (c *EnrollmentController) GetCertificate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	courseID, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	view, err := c.CertificateService.GetForUserCourse(claims.UserID, courseID)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "课程不存在")
	case errors.Is(err, util.ErrNotEnrolled):
		util.NotFound(ctx, "尚未报名该课程")
	case errors.Is(err, util.ErrCourseNotCompleted):
		util.BadRequest(ctx, "课程尚未完成")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, view)
	}
}

// VerifyCertificate godoc
// @Summary 证书核验
// @Description 凭序列号公开核验证书真伪，无需登录
// @Tags 证书
// @Produce  json
// @Param   serial path string true "证书序列号"
// @Success 200 {object} util.Response{data=service.CertificateView} "有效"
// @Failure 404 {object} util.Response "序列号无效"
// @Router /api/certificates/verify/{serial} [get]
func (c *EnrollmentController) VerifyCertificate(ctx *gin.Context) {
	serial := ctx.Param("serial")
	view, err := c.CertificateService.VerifyBySerial(serial)
	if errors.Is(err, util.ErrCertificateNotFound) {
		util.NotFound(ctx, "证书序列号无效")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
