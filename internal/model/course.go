package model

type SectionKind string

const (
	SectionVideo SectionKind = "video"
	SectionPDF   SectionKind = "pdf"
	SectionLink  SectionKind = "link"
)

// PriceFree 价格为 0 的课程统一存储为该字面量
const PriceFree = "free"

// Section 课程章节，Position 决定播放顺序
// swagger:model Section
type Section struct {
	BaseModel
	CourseID    uint        `gorm:"index;not null" json:"courseId"`
	Position    int         `gorm:"not null" json:"position"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	ContentURL  string      `gorm:"size:255;not null" json:"contentUrl"`
	Kind        SectionKind `gorm:"type:varchar(10);default:'video'" json:"kind"`
	Duration    float64     `json:"duration"` // 秒，上传时由 ffmpeg 探测
}

// Course 课程聚合根
// swagger:model Course
type Course struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Educator    string `gorm:"size:100;not null" json:"educator"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Category    string `gorm:"size:100;not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`
	// 价格保留字符串表示："free" 或数字字符串
	Price        string    `gorm:"size:20" json:"price"`
	Thumbnail    string    `gorm:"size:255" json:"thumbnail"`
	PreviewVideo string    `gorm:"size:255" json:"previewVideo"`
	Sections     []Section `gorm:"constraint:OnDelete:CASCADE" json:"sections"`

	// 弱维护计数器：enrolled 在报名成功时自增，completions 在首次完课时自增
	Enrolled    int `gorm:"default:0" json:"enrolled"`
	Views       int `gorm:"default:0" json:"views"`
	Completions int `gorm:"default:0" json:"completions"`
}

func (Course) TableName() string {
	return "courses"
}
