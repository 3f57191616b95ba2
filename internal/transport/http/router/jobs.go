package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-gin-jobs-api/internal/domain"
	"go-gin-jobs-api/internal/repo"
	httpez "go-gin-jobs-api/internal/transport/http/ez"
	mdw "go-gin-jobs-api/internal/transport/http/middleware"
	"go-gin-jobs-api/pkg/utils"
)

// 月度趋势最多保留最近 6 组
const trendMonths = 6

func mountJobActions(authed *gin.RouterGroup, db *gorm.DB) {
	ez := httpez.New(authed)

	// --- GET /jobs 列表：search/status/jobType/sort/page/limit ---
	type listOut struct {
		Jobs       []domain.Job `json:"jobs"`
		TotalJobs  int64        `json:"totalJobs"`
		NumOfPages int          `json:"numOfPages"`
		Page       int          `json:"page"`
	}
	httpez.RegisterAction[repo.JobListParams, listOut](ez, db, httpez.Action[repo.JobListParams, listOut]{
		Method: http.MethodGet,
		Path:   "/jobs",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *repo.JobListParams) (listOut, error) {
			q := repo.NewJobListSpec(c.GetString(mdw.KeyUserID), *in)
			jobs, total, err := repo.NewJobRepo(tx).List(q)
			if err != nil {
				return listOut{}, httpez.Internal("list jobs failed", err)
			}
			return listOut{
				Jobs:       jobs,
				TotalJobs:  total,
				NumOfPages: repo.NumOfPages(total, q.Limit),
				Page:       q.Page,
			}, nil
		},
	})

	// --- GET /jobs/stats 仪表盘聚合，不做缓存，每次现算 ---
	type statsOut struct {
		DefaultStats        domain.StatusCounts   `json:"defaultStats"`
		MonthlyApplications []domain.MonthlyCount `json:"monthlyApplications"`
	}
	httpez.RegisterAction[struct{}, statsOut](ez, db, httpez.Action[struct{}, statsOut]{
		Method: http.MethodGet,
		Path:   "/jobs/stats",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (statsOut, error) {
			uid := c.GetString(mdw.KeyUserID)
			jobs := repo.NewJobRepo(tx)

			counts, err := jobs.StatusCounts(uid)
			if err != nil {
				return statsOut{}, httpez.Internal("status stats failed", err)
			}
			monthly, err := jobs.MonthlyApplications(uid, trendMonths)
			if err != nil {
				return statsOut{}, httpez.Internal("monthly stats failed", err)
			}
			return statsOut{DefaultStats: counts, MonthlyApplications: monthly}, nil
		},
	})

	// --- POST /jobs ---
	type createIn struct {
		Company  string `json:"company"  binding:"required,max=100"`
		Position string `json:"position" binding:"required,max=200"`
		Status   string `json:"status"   binding:"omitempty,oneof=pending interview declined"`
		JobType  string `json:"jobType"  binding:"omitempty,oneof=full-time part-time internship contract"`
	}
	httpez.RegisterAction[createIn, domain.Job](ez, db, httpez.Action[createIn, domain.Job]{
		Method: http.MethodPost,
		Path:   "/jobs",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *createIn) (domain.Job, error) {
			j := domain.Job{
				ID:        utils.NewID(),
				Company:   strings.TrimSpace(in.Company),
				Position:  strings.TrimSpace(in.Position),
				Status:    in.Status,
				JobType:   in.JobType,
				CreatedBy: c.GetString(mdw.KeyUserID), // 归属来自会话，不信任入参
			}
			if j.Status == "" {
				j.Status = domain.StatusPending
			}
			if j.JobType == "" {
				j.JobType = domain.TypeFullTime
			}
			if err := repo.NewJobRepo(tx).Create(&j); err != nil {
				return domain.Job{}, httpez.Internal("create job failed", err)
			}
			return j, nil
		},
	})

	// --- GET /jobs/:id ---
	httpez.RegisterAction[struct{}, domain.Job](ez, db, httpez.Action[struct{}, domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (domain.Job, error) {
			j, err := repo.NewJobRepo(tx).FindByOwner(c.Param("id"), c.GetString(mdw.KeyUserID))
			if err != nil {
				return domain.Job{}, httpez.Internal("db error", err)
			}
			if j == nil {
				return domain.Job{}, httpez.NotFound("job not found")
			}
			return *j, nil
		},
	})

	// --- PATCH /jobs/:id 部分更新，company/position 不允许清空 ---
	type patchIn struct {
		Company  *string `json:"company"`
		Position *string `json:"position"`
		Status   *string `json:"status"  binding:"omitempty,oneof=pending interview declined"`
		JobType  *string `json:"jobType" binding:"omitempty,oneof=full-time part-time internship contract"`
	}
	httpez.RegisterAction[patchIn, domain.Job](ez, db, httpez.Action[patchIn, domain.Job]{
		Method: http.MethodPatch,
		Path:   "/jobs/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *patchIn) (domain.Job, error) {
			if c.GetBool(mdw.KeyTestUser) {
				return domain.Job{}, httpez.BadRequest("demo account is read only")
			}
			id, uid := c.Param("id"), c.GetString(mdw.KeyUserID)

			fields := map[string]any{}
			if in.Company != nil {
				if strings.TrimSpace(*in.Company) == "" {
					return domain.Job{}, httpez.BadRequest("company cannot be empty")
				}
				fields["company"] = strings.TrimSpace(*in.Company)
			}
			if in.Position != nil {
				if strings.TrimSpace(*in.Position) == "" {
					return domain.Job{}, httpez.BadRequest("position cannot be empty")
				}
				fields["position"] = strings.TrimSpace(*in.Position)
			}
			if in.Status != nil {
				fields["status"] = *in.Status
			}
			if in.JobType != nil {
				fields["job_type"] = *in.JobType
			}

			jobs := repo.NewJobRepo(tx)
			if len(fields) > 0 {
				n, err := jobs.UpdateByOwner(id, uid, fields)
				if err != nil {
					return domain.Job{}, httpez.Internal("update job failed", err)
				}
				if n == 0 {
					return domain.Job{}, httpez.NotFound("job not found")
				}
			}
			j, err := jobs.FindByOwner(id, uid)
			if err != nil {
				return domain.Job{}, httpez.Internal("db error", err)
			}
			if j == nil {
				return domain.Job{}, httpez.NotFound("job not found")
			}
			return *j, nil
		},
	})

	// --- DELETE /jobs/:id ---
	httpez.RegisterAction[struct{}, gin.H](ez, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/jobs/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			if c.GetBool(mdw.KeyTestUser) {
				return nil, httpez.BadRequest("demo account is read only")
			}
			id := c.Param("id")
			n, err := repo.NewJobRepo(tx).DeleteByOwner(id, c.GetString(mdw.KeyUserID))
			if err != nil {
				return nil, httpez.Internal("delete job failed", err)
			}
			if n == 0 {
				return nil, httpez.NotFound("job not found")
			}
			return gin.H{"id": id}, nil
		},
	})
}
