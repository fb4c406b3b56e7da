package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/middleware"
	"fiberloom/backend/internal/response"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		authService: NewAuthService(NewUserRepository(db)),
	}
}

// Login 管理员登录
// @Summary 管理员登录，成功返回访问令牌与用户信息
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Failure 401 {object} response.Response "用户名或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, berr := h.authService.Login(req)
	if berr != nil {
		// 登录失败计入限流窗口
		if berr.Code == response.Unauthorized {
			middleware.RecordLoginFailure(req.Username)
		}
		dto.ErrorResponse(c, berr)
		return
	}

	middleware.ClearLoginFailures(req.Username)
	dto.SuccessResponse(c, result)
}

// Profile 获取当前用户信息
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=dto.ProfileResponse}
// @Failure 401 {object} response.Response
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetUint("user_id")

	profile, berr := h.authService.Profile(userID)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, profile)
}

// UpdateCredentials 修改用户名/密码
// @Summary 修改当前用户凭据（需提供当前密码）
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateCredentialsRequest true "修改凭据请求"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response "当前密码错误"
// @Router /auth/credentials [patch]
func (h *AuthHandler) UpdateCredentials(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req dto.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, berr := h.authService.UpdateCredentials(userID, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, u)
}
