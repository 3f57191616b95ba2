package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"go-gin-jobs-api/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(j *domain.Job) error { return r.db.Create(j).Error }

func (r *JobRepo) FindByOwner(id, owner string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.First(&j, "id = ? AND created_by = ?", id, owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

// List 返回当前页 + 不含分页的总数；超出页码得到空列表而非错误
func (r *JobRepo) List(s JobListSpec) ([]domain.Job, int64, error) {
	q := s.scope(r.db.Model(&domain.Job{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if s.OrderBy != "" {
		q = q.Order(s.OrderBy)
	}
	jobs := make([]domain.Job, 0, s.Limit)
	if err := q.Offset(s.Offset()).Limit(s.Limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepo) UpdateByOwner(id, owner string, fields map[string]any) (int64, error) {
	res := r.db.Model(&domain.Job{}).
		Where("id = ? AND created_by = ?", id, owner).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *JobRepo) DeleteByOwner(id, owner string) (int64, error) {
	res := r.db.Where("id = ? AND created_by = ?", id, owner).Delete(&domain.Job{})
	return res.RowsAffected, res.Error
}

func (r *JobRepo) StatusCounts(owner string) (domain.StatusCounts, error) {
	var rows []statusRow
	err := r.db.Model(&domain.Job{}).
		Select("status, COUNT(*) AS count").
		Where("created_by = ?", owner).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return domain.StatusCounts{}, err
	}
	return fillStatusCounts(rows), nil
}

// MonthlyApplications 按 (年, 月) 分组计数，取最近 months 组，升序返回。
// EXTRACT 在 mysql 和 postgres 下都可用。
func (r *JobRepo) MonthlyApplications(owner string, months int) ([]domain.MonthlyCount, error) {
	var rows []monthRow
	err := r.db.Model(&domain.Job{}).
		Select("EXTRACT(YEAR FROM created_at) AS year, EXTRACT(MONTH FROM created_at) AS month, COUNT(*) AS count").
		Where("created_by = ?", owner).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return shapeMonthly(rows), nil
}

type statusRow struct {
	Status string
	Count  int64
}

type monthRow struct {
	Year  int
	Month int
	Count int64
}

func fillStatusCounts(rows []statusRow) domain.StatusCounts {
	var out domain.StatusCounts
	for _, r := range rows {
		switch r.Status {
		case domain.StatusPending:
			out.Pending = r.Count
		case domain.StatusInterview:
			out.Interview = r.Count
		case domain.StatusDeclined:
			out.Declined = r.Count
		}
	}
	return out
}

// shapeMonthly 把倒序的分组结果翻转成时间升序，并渲染 "Jan 2006" 标签
func shapeMonthly(rows []monthRow) []domain.MonthlyCount {
	out := make([]domain.MonthlyCount, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		label := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out = append(out, domain.MonthlyCount{Date: label, Count: r.Count})
	}
	return out
}
