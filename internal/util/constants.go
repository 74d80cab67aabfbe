package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 文件上传相关常量
const (
	MimeVideo = "video/"
	MimeImage = "image/"
)

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// HasAllowedExtension 扩展名白名单校验，ext 需为小写且带点
func HasAllowedExtension(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
