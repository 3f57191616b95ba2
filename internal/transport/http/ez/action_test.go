package ez

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// 无库测试桩：RegisterAction 在 db == nil 时直接执行 handler

func newTestGroup() (*gin.Engine, EZ) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r, New(r.Group("/api/v1"))
}

func TestRegisterAction_OKEnvelope(t *testing.T) {
	r, e := newTestGroup()
	RegisterAction[struct{}, gin.H](e, nil, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/ping",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			return gin.H{"pong": true}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":0`)
	assert.Contains(t, w.Body.String(), `"pong":true`)
}

func TestRegisterAction_AErrMapsToHTTPStatus(t *testing.T) {
	r, e := newTestGroup()
	RegisterAction[struct{}, gin.H](e, nil, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/missing",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			return nil, NotFound("job not found")
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
	assert.Contains(t, w.Body.String(), "job not found")
}

func TestRegisterAction_UnknownErrorIs500(t *testing.T) {
	r, e := newTestGroup()
	RegisterAction[struct{}, gin.H](e, nil, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/boom",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			return nil, assert.AnError
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":500`)
}

func TestRegisterAction_BindErrorIs400(t *testing.T) {
	type in struct {
		Email string `json:"email" binding:"required,email"`
	}
	r, e := newTestGroup()
	RegisterAction[in, gin.H](e, nil, Action[in, gin.H]{
		Method: http.MethodPost,
		Path:   "/echo",
		Binder: BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, v *in) (gin.H, error) {
			return gin.H{"email": v.Email}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)
}

func TestRegisterAction_AuthRequiresUserID(t *testing.T) {
	r, e := newTestGroup()
	RegisterAction[struct{}, gin.H](e, nil, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/secure",
		Binder: BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			return gin.H{"ok": true}, nil
		},
	})

	// 没有任何鉴权中间件写入 userId
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/secure", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAErr_ErrorString(t *testing.T) {
	assert.Equal(t, "nope", BadRequest("nope").Error())
	assert.Equal(t, assert.AnError.Error(), (&AErr{Code: 500, Err: assert.AnError}).Error())
	assert.Equal(t, "action error", (&AErr{Code: 500}).Error())
}
