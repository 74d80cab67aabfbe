package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	courseListCacheKey = "courses:all"
	courseListCacheTTL = 30 * time.Second
)

// SectionUpload 创建课程时的单个章节输入
type SectionUpload struct {
	Title       string
	Description string
	File        *multipart.FileHeader
}

type CreateCourseInput struct {
	Educator    string
	Title       string
	Category    string
	Price       string
	Description string
	Sections    []SectionUpload
	Thumbnail   *multipart.FileHeader
}

type CourseService struct {
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
	Storage    *StorageService
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, storage *StorageService, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
		Storage:    storage,
		Redis:      rdb,
	}
}

// NormalizePrice 价格为 0（或缺省）的课程统一存为字面量 "free"，其余原样保留
func NormalizePrice(price string) string {
	p := strings.TrimSpace(price)
	if p == "" {
		return model.PriceFree
	}
	if v, err := strconv.ParseFloat(p, 64); err == nil && v == 0 {
		return model.PriceFree
	}
	return p
}

func (s *CourseService) CreateCourse(ctx context.Context, owner *model.User, input *CreateCourseInput) (*model.Course, error) {
	if owner.Role != model.Teacher && owner.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}
	if input.Educator == "" || input.Title == "" || input.Category == "" || input.Description == "" {
		return nil, errors.New("missing required course fields")
	}
	if len(input.Sections) == 0 {
		return nil, errors.New("at least one section with title, description and content is required")
	}
	for _, sec := range input.Sections {
		if sec.Title == "" || sec.Description == "" {
			return nil, errors.New("all sections must have a title and description")
		}
		if sec.File == nil {
			return nil, errors.New("all sections must have content")
		}
		ext := strings.ToLower(filepath.Ext(sec.File.Filename))
		if !util.HasAllowedExtension(ext, util.AllowedVideoExtensions) {
			return nil, errors.New("unsupported video format: " + ext)
		}
	}
	if input.Thumbnail != nil {
		ext := strings.ToLower(filepath.Ext(input.Thumbnail.Filename))
		if !util.HasAllowedExtension(ext, util.AllowedImageExtensions) {
			return nil, errors.New("unsupported thumbnail format: " + ext)
		}
	}

	course := &model.Course{
		UserID:      owner.ID,
		Educator:    input.Educator,
		Title:       input.Title,
		Category:    input.Category,
		Price:       NormalizePrice(input.Price),
		Description: input.Description,
	}

	for i, sec := range input.Sections {
		url, localPath, err := s.storeUpload(ctx, sec.File, "videos")
		if err != nil {
			return nil, err
		}

		section := model.Section{
			Position:    i,
			Title:       sec.Title,
			Description: sec.Description,
			ContentURL:  url,
			Kind:        model.SectionVideo,
		}

		// 时长探测失败不阻塞创建
		if localPath != "" {
			if info, err := util.ProbeVideo(localPath); err == nil {
				section.Duration = info.Duration
			} else {
				logger.Log.Warn("video probe failed", zap.String("file", localPath), zap.Error(err))
			}
		}

		course.Sections = append(course.Sections, section)
	}

	if input.Thumbnail != nil {
		url, _, err := s.storeUpload(ctx, input.Thumbnail, "thumbnails")
		if err != nil {
			return nil, err
		}
		course.Thumbnail = url
	} else if localPath := s.Storage.LocalPath(firstContentName(course)); localPath != "" {
		// 没有上传封面时，从第一节视频抓帧生成
		thumbName := filepath.Join("thumbnails", uuid.New().String()+".jpg")
		thumbPath := s.Storage.LocalPath(thumbName)
		if err := util.GenerateThumbnail(localPath, thumbPath, "00:00:01"); err == nil {
			course.Thumbnail = s.Storage.GetURL(thumbName)
		} else {
			logger.Log.Warn("thumbnail generation failed", zap.Error(err))
		}
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return course, nil
}

func (s *CourseService) storeUpload(ctx context.Context, header *multipart.FileHeader, dir string) (url string, localPath string, err error) {
	src, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := filepath.Join(dir, uuid.New().String()+ext)
	contentType := header.Header.Get("Content-Type")

	url, err = s.Storage.Upload(ctx, filename, src, header.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return url, s.Storage.LocalPath(filename), nil
}

func firstContentName(course *model.Course) string {
	if len(course.Sections) == 0 {
		return ""
	}
	return strings.TrimPrefix(course.Sections[0].ContentURL, "/uploads/")
}

// ListCourses 公共课程列表，Redis 短缓存
func (s *CourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, courseListCacheKey).Result(); err == nil {
			var courses []model.Course
			if json.Unmarshal([]byte(cached), &courses) == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(courses); err == nil {
			s.Redis.Set(ctx, courseListCacheKey, raw, courseListCacheTTL)
		}
	}
	return courses, nil
}

func (s *CourseService) ListCoursesByOwner(userID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByOwner(userID)
}

// GetCourse 课程详情，顺带累加弱维护的浏览计数
func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.CourseRepo.IncrementViews(id); err != nil {
		logger.Log.Warn("view counter update failed", zap.Uint("course", id), zap.Error(err))
	}
	return course, nil
}

// CourseUpdate 部分更新：nil 字段不触碰
type CourseUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Price        *string `json:"price"`
	Thumbnail    *string `json:"thumbnail"`
	PreviewVideo *string `json:"previewVideo"`
}

func (s *CourseService) UpdateCourse(ctx context.Context, callerID uint, asAdmin bool, courseID uint, update *CourseUpdate) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if !asAdmin {
		if err := s.checkOwnership(callerID, course); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Price != nil {
		fields["price"] = NormalizePrice(*update.Price)
	}
	if update.Thumbnail != nil {
		fields["thumbnail"] = *update.Thumbnail
	}
	if update.PreviewVideo != nil {
		fields["preview_video"] = *update.PreviewVideo
	}

	if len(fields) > 0 {
		if err := s.CourseRepo.UpdateFields(courseID, fields); err != nil {
			return nil, err
		}
	}

	s.invalidateListCache(ctx)
	return s.CourseRepo.FindByID(courseID)
}

func (s *CourseService) DeleteCourse(ctx context.Context, callerID uint, asAdmin bool, courseID uint) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	if !asAdmin {
		if err := s.checkOwnership(callerID, course); err != nil {
			return err
		}
	}

	if err := s.CourseRepo.Delete(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// checkOwnership 普通端点的写权限：资源归属者，或存储角色为管理员的调用者
func (s *CourseService) checkOwnership(callerID uint, course *model.Course) error {
	if course.UserID == callerID {
		return nil
	}

	caller, err := s.UserRepo.FindByID(callerID)
	if err != nil {
		return util.ErrPermissionDenied
	}
	if caller.Role == model.Admin {
		return nil
	}
	return util.ErrPermissionDenied
}

func (s *CourseService) invalidateListCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, courseListCacheKey)
	}
}
