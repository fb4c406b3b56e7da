package dto

import (
	"fiberloom/backend/internal/model/user"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        user.User `json:"user"`
}

// UpdateCredentialsRequest 修改凭据请求，必须携带当前密码
type UpdateCredentialsRequest struct {
	CurrentPassword string  `json:"current_password" binding:"required"`
	Username        *string `json:"username" binding:"omitempty,max=100"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=6"`
}

// ProfileResponse 当前用户信息
type ProfileResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
