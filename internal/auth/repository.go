package auth

import (
	"gorm.io/gorm"

	"fiberloom/backend/internal/model/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername 按用户名查找用户
func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return &u, err
}

// GetByID 按ID查找用户
func (r *UserRepository) GetByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

// UsernameExists 检查用户名是否已被其他用户占用
func (r *UserRepository) UsernameExists(username string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&user.User{}).Where("username = ?", username)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Update 保存用户
func (r *UserRepository) Update(u *user.User) error {
	return r.db.Save(u).Error
}
