package domain

import "time"

// 状态与职位类型的取值是封闭集合，入参绑定层用 oneof 校验
const (
	StatusPending   = "pending"
	StatusInterview = "interview"
	StatusDeclined  = "declined"

	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeInternship = "internship"
	TypeContract   = "contract"
)

type Job struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Company   string    `gorm:"size:100;not null" json:"company"`
	Position  string    `gorm:"size:200;not null" json:"position"`
	Status    string    `gorm:"size:16;not null;default:pending;index" json:"status"`
	JobType   string    `gorm:"size:16;not null;default:full-time" json:"jobType"`
	CreatedBy string    `gorm:"type:varchar(32);not null;index" json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

// StatusCounts 仪表盘的状态分布，三个键永远都在（缺省补 0）
type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
}

// MonthlyCount 按月申请量，date 形如 "Jan 2026"
type MonthlyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type JobRepository interface {
	Create(j *Job) error
	// FindByOwner 未命中返回 (nil, nil)，归属不符视同不存在
	FindByOwner(id, owner string) (*Job, error)
	UpdateByOwner(id, owner string, fields map[string]any) (int64, error)
	DeleteByOwner(id, owner string) (int64, error)
	StatusCounts(owner string) (StatusCounts, error)
	MonthlyApplications(owner string, months int) ([]MonthlyCount, error)
}
