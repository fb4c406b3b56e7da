// Package user 后台用户模型
package user

import "time"

// 用户角色
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User 后台用户表
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	// bcrypt哈希，永不序列化
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	// 角色: admin, editor
	Role      string    `gorm:"type:varchar(50);not null;default:'admin'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
