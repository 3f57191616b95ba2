package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-gin-jobs-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

// UpdateProfile 用白名单字段做部分更新，password_hash 永远不在其中，
// 档案重存不会动到口令哈希。
func (r *UserRepo) UpdateProfile(id string, fields map[string]any) error {
	delete(fields, "password_hash")
	return r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
