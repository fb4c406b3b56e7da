package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/user"
	"fiberloom/backend/internal/pkg"
	"fiberloom/backend/internal/response"
)

type AuthService struct {
	repo *UserRepository
}

func NewAuthService(repo *UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login 校验用户名密码并签发访问令牌
// 用户不存在与密码错误返回同一条泛化消息，避免用户名枚举
func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, *response.BusinessError) {
	u, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.UnauthorizedError("用户名或密码错误")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询用户失败"), response.WithError(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, response.UnauthorizedError("用户名或密码错误")
	}

	token, err := pkg.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("生成令牌失败"), response.WithError(err))
	}

	return &dto.LoginResponse{AccessToken: token, User: *u}, nil
}

// Profile 当前用户信息
func (s *AuthService) Profile(userID uint) (*dto.ProfileResponse, *response.BusinessError) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.UnauthorizedError("用户不存在或已被删除")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询用户失败"), response.WithError(err))
	}

	return &dto.ProfileResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

// UpdateCredentials 修改用户名/密码，必须先通过当前密码校验
func (s *AuthService) UpdateCredentials(userID uint, req dto.UpdateCredentialsRequest) (*user.User, *response.BusinessError) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.UnauthorizedError("用户不存在或已被删除")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询用户失败"), response.WithError(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return nil, response.UnauthorizedError("当前密码错误")
	}

	if req.Username != nil && *req.Username != u.Username {
		exists, err := s.repo.UsernameExists(*req.Username, userID)
		if err != nil {
			return nil, response.NewBusinessError(response.WithErrorMessage("检查用户名失败"), response.WithError(err))
		}
		if exists {
			return nil, response.ConflictError("用户名已被占用")
		}
		u.Username = *req.Username
	}

	if req.NewPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, response.NewBusinessError(response.WithErrorMessage("加密密码失败"), response.WithError(err))
		}
		u.Password = string(hash)
	}

	if err := s.repo.Update(u); err != nil {
		return nil, response.BadRequestError("更新凭据失败")
	}
	return u, nil
}
