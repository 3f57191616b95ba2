package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-gin-jobs-api/internal/core/auth"
	"go-gin-jobs-api/internal/domain"
	"go-gin-jobs-api/internal/repo"
	httpez "go-gin-jobs-api/internal/transport/http/ez"
	mdw "go-gin-jobs-api/internal/transport/http/middleware"
	"go-gin-jobs-api/pkg/utils"
)

const (
	defaultLastName = "lastname"
	defaultLocation = "my city"
)

type userOut struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

type authOut struct {
	User  userOut `json:"user"`
	Token string  `json:"token"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Name: u.Name, LastName: u.LastName, Email: u.Email, Location: u.Location}
}

func mountAuthActions(public, authed *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer) {
	ezPublic := httpez.New(public)
	ezAuth := httpez.New(authed)

	// --- POST /auth/register ---
	type registerIn struct {
		Name     string `json:"name"     binding:"required,min=3,max=50"`
		LastName string `json:"lastName" binding:"omitempty,min=5,max=50"`
		Location string `json:"location" binding:"omitempty,min=5,max=50"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	httpez.RegisterAction[registerIn, authOut](ezPublic, db, httpez.Action[registerIn, authOut]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *registerIn) (authOut, error) {
			u := domain.User{
				ID:           utils.NewID(),
				Name:         strings.TrimSpace(in.Name),
				LastName:     strings.TrimSpace(in.LastName),
				Location:     strings.TrimSpace(in.Location),
				Email:        strings.TrimSpace(in.Email),
				PasswordHash: utils.HashPassword(in.Password),
			}
			if u.LastName == "" {
				u.LastName = defaultLastName
			}
			if u.Location == "" {
				u.Location = defaultLocation
			}

			users := repo.NewUserRepo(tx)
			if err := users.Create(&u); err != nil {
				if isDupKey(err) {
					return authOut{}, httpez.BadRequest("email already in use")
				}
				return authOut{}, httpez.Internal("create user failed", err)
			}
			tok, err := jwter.Issue(u.ID, u.Name)
			if err != nil {
				return authOut{}, httpez.Internal("issue token failed", err)
			}
			return authOut{User: toUserOut(&u), Token: tok}, nil
		},
	})

	// --- POST /auth/login ---
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	httpez.RegisterAction[loginIn, authOut](ezPublic, db, httpez.Action[loginIn, authOut]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (authOut, error) {
			users := repo.NewUserRepo(tx)
			u, err := users.FindByEmail(strings.TrimSpace(in.Email))
			if err != nil {
				return authOut{}, httpez.Internal("db error", err)
			}
			if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
				return authOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, err := jwter.Issue(u.ID, u.Name)
			if err != nil {
				return authOut{}, httpez.Internal("issue token failed", err)
			}
			return authOut{User: toUserOut(u), Token: tok}, nil
		},
	})

	// --- PATCH /auth/updateUser ---
	// 档案更新不经过 password_hash，口令只在 updatePassword 里重哈希
	type updateUserIn struct {
		Name     string `json:"name"     binding:"required,min=3,max=50"`
		LastName string `json:"lastName" binding:"required,min=5,max=50"`
		Email    string `json:"email"    binding:"required,email"`
		Location string `json:"location" binding:"required,min=5,max=50"`
	}
	httpez.RegisterAction[updateUserIn, authOut](ezAuth, db, httpez.Action[updateUserIn, authOut]{
		Method: http.MethodPatch,
		Path:   "/auth/updateUser",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updateUserIn) (authOut, error) {
			if c.GetBool(mdw.KeyTestUser) {
				return authOut{}, httpez.BadRequest("demo account is read only")
			}
			uid := c.GetString(mdw.KeyUserID)

			users := repo.NewUserRepo(tx)
			err := users.UpdateProfile(uid, map[string]any{
				"name":      strings.TrimSpace(in.Name),
				"last_name": strings.TrimSpace(in.LastName),
				"email":     strings.TrimSpace(in.Email),
				"location":  strings.TrimSpace(in.Location),
			})
			if err != nil {
				if isDupKey(err) {
					return authOut{}, httpez.BadRequest("email already in use")
				}
				return authOut{}, httpez.Internal("update user failed", err)
			}

			u, err := users.FindByID(uid)
			if err != nil || u == nil {
				return authOut{}, httpez.Internal("reload user failed", err)
			}
			// name 可能变了，令牌一并换新
			tok, err := jwter.Issue(u.ID, u.Name)
			if err != nil {
				return authOut{}, httpez.Internal("issue token failed", err)
			}
			return authOut{User: toUserOut(u), Token: tok}, nil
		},
	})

	// --- PATCH /auth/updatePassword ---
	type updatePasswordIn struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	httpez.RegisterAction[updatePasswordIn, gin.H](ezAuth, db, httpez.Action[updatePasswordIn, gin.H]{
		Method: http.MethodPatch,
		Path:   "/auth/updatePassword",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updatePasswordIn) (gin.H, error) {
			if c.GetBool(mdw.KeyTestUser) {
				return nil, httpez.BadRequest("demo account is read only")
			}
			uid := c.GetString(mdw.KeyUserID)

			users := repo.NewUserRepo(tx)
			u, err := users.FindByID(uid)
			if err != nil {
				return nil, httpez.Internal("db error", err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			if !utils.CheckPassword(in.OldPassword, u.PasswordHash) {
				return nil, httpez.Unauthorized("wrong password")
			}
			if err := users.UpdatePassword(uid, utils.HashPassword(in.NewPassword)); err != nil {
				return nil, httpez.Internal("update password failed", err)
			}
			return gin.H{"updated": true}, nil
		},
	})
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
