package repo

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// JobListParams 是 GET /jobs 的原始查询参数。page/limit 保持字符串：
// 非数字按缺省处理，而不是 400。
type JobListParams struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	JobType string `form:"jobType"`
	Sort    string `form:"sort"`
	Page    string `form:"page"`
	Limit   string `form:"limit"`
}

const (
	defaultLimit = 10

	filterAll = "all" // 等同于不过滤
)

var sortOrders = map[string]string{
	"latest": "created_at DESC",
	"oldest": "created_at ASC",
	"a-z":    "position ASC",
	"z-a":    "position DESC",
}

// JobListSpec 是组装完的查询规格：归属过滤 + 可选条件 + 排序 + 分页
type JobListSpec struct {
	Owner   string
	Search  string
	Status  string
	JobType string
	OrderBy string // 空串表示按存储层默认顺序
	Page    int
	Limit   int
}

func NewJobListSpec(owner string, p JobListParams) JobListSpec {
	s := JobListSpec{
		Owner:   owner,
		Search:  strings.TrimSpace(p.Search),
		Limit:   atoiDefault(p.Limit, defaultLimit),
		Page:    atoiDefault(p.Page, 1),
		OrderBy: sortOrders[p.Sort],
	}
	if v := strings.TrimSpace(p.Status); v != "" && v != filterAll {
		s.Status = v
	}
	if v := strings.TrimSpace(p.JobType); v != "" && v != filterAll {
		s.JobType = v
	}
	return s
}

func (s JobListSpec) Offset() int { return (s.Page - 1) * s.Limit }

// scope 把过滤条件挂到查询上；排序与分页由 List 单独施加，
// 这样同一个 scope 可以复用在 Count 上。
func (s JobListSpec) scope(q *gorm.DB) *gorm.DB {
	q = q.Where("created_by = ?", s.Owner)
	if s.Search != "" {
		q = q.Where("LOWER(position) LIKE ?", "%"+strings.ToLower(s.Search)+"%")
	}
	if s.Status != "" {
		q = q.Where("status = ?", s.Status)
	}
	if s.JobType != "" {
		q = q.Where("job_type = ?", s.JobType)
	}
	return q
}

// NumOfPages = ceil(total / limit)
func NumOfPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
