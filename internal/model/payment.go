package model

// CoursePayment 报名时提交的模拟支付表单记录。
// 每次新报名都会无条件落一条（免费课程也是），没有任何组件会读回它。
// swagger:model CoursePayment
type CoursePayment struct {
	BaseModel
	UserID     uint   `gorm:"index;not null" json:"userId"`
	CourseID   uint   `gorm:"index;not null" json:"courseId"`
	CardHolder string `gorm:"size:100" json:"cardHolder"`
	CardNumber string `gorm:"size:30" json:"cardNumber"`
	CardExpiry string `gorm:"size:10" json:"cardExpiry"`
	CardCVV    string `gorm:"size:10" json:"-"`
	Amount     string `gorm:"size:20" json:"amount"`
}

func (CoursePayment) TableName() string {
	return "course_payments"
}
