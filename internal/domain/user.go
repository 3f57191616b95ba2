package domain

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	LastName     string    `gorm:"size:64;not null" json:"lastName"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Location     string    `gorm:"size:64;not null" json:"location"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	// UpdateProfile 只更新档案字段，绝不触碰 password_hash
	UpdateProfile(id string, fields map[string]any) error
	UpdatePassword(id, passwordHash string) error
}
