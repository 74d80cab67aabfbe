package controller

import (
	"errors"
	"strconv"

	"course_market_backend/internal/service"
	"course_market_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AuthService   *service.AuthService
}

func NewCourseController(courseService *service.CourseService, authService *service.AuthService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		AuthService:   authService,
	}
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "无效的ID参数")
		return 0, false
	}
	return uint(id), true
}

// CreateCourse godoc
// @Summary 创建课程
// @Description 教师上传课程信息、章节视频和可选封面图
// @Tags 课程
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   educator formData string true "讲师名称"
// @Param   title formData string true "课程标题"
// @Param   category formData string true "课程分类"
// @Param   price formData string false "课程价格，0 或留空表示免费"
// @Param   description formData string true "课程简介"
// @Param   sectionTitles formData []string true "章节标题，与视频一一对应"
// @Param   sectionDescriptions formData []string true "章节简介"
// @Param   sectionVideos formData file true "章节视频文件"
// @Param   thumbnail formData file false "封面图，缺省时从首个视频截帧"
// @Success 201 {object} util.Response{data=model.Course} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "仅教师可创建课程"
// @Router /api/user/addcourse [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.BadRequest(ctx, "无法解析表单: "+err.Error())
		return
	}

	formValue := func(key string) string {
		if vals := form.Value[key]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	titles := form.Value["sectionTitles"]
	descriptions := form.Value["sectionDescriptions"]
	videos := form.File["sectionVideos"]

	sections := make([]service.SectionUpload, 0, len(videos))
	for i, video := range videos {
		section := service.SectionUpload{File: video}
		if i < len(titles) {
			section.Title = titles[i]
		}
		if i < len(descriptions) {
			section.Description = descriptions[i]
		}
		sections = append(sections, section)
	}

	input := &service.CreateCourseInput{
		Educator:    formValue("educator"),
		Title:       formValue("title"),
		Category:    formValue("category"),
		Price:       formValue("price"),
		Description: formValue("description"),
		Sections:    sections,
	}
	if thumbs := form.File["thumbnail"]; len(thumbs) > 0 {
		input.Thumbnail = thumbs[0]
	}

	course, err := c.CourseService.CreateCourse(ctx.Request.Context(), user, input)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx, "仅教师可创建课程")
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary 课程列表
// @Description 面向所有访客的课程目录
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/user/getallcourses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情
// @Description 单个课程的公开详情，访问时浏览计数加一
// @Tags 课程
// @Produce  json
// @Param   courseid path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/getcourse/{courseid} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	course, err := c.CourseService.GetCourse(id)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx, "课程不存在")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// ListOwnCourses godoc
// @Summary 教师名下课程
// @Description 当前登录教师创建的全部课程
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/getallcoursesteacher [get]
func (c *CourseController) ListOwnCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListCoursesByOwner(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// UpdateCourse godoc
// @Summary 更新课程
// @Description 部分更新课程元信息，未提交的字段保持不变
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "课程ID"
// @Param   body body service.CourseUpdate true "要更新的字段"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/editcourse/{courseId} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
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

	course, err := c.CourseService.UpdateCourse(ctx.Request.Context(), claims.UserID, false, id, &update)
	if err != nil {
		writeCourseMutationError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 课程归属教师删除自己的课程，章节随之删除
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseid path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/user/deletecourse/{courseid} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "courseid")
	if !ok {
		return
	}

	if err := c.CourseService.DeleteCourse(ctx.Request.Context(), claims.UserID, false, id); err != nil {
		writeCourseMutationError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

func writeCourseMutationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "课程不存在")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, "无权操作该课程")
	default:
		util.LogInternalError(ctx, err)
	}
}
