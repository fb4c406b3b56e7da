package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/database"
	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/user"
	"fiberloom/backend/internal/pkg"
	"fiberloom/backend/internal/response"
)

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*pkg.Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// 如果 cookie 中没有，尝试从 Authorization header 获取
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("未提供认证令牌")
		}

		// 验证格式: Bearer <token>
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		} else {
			return nil, fmt.Errorf("认证格式错误")
		}
	}

	claims, err := pkg.ParseAccessToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}
	return claims, nil
}

// JWTAuth JWT 认证中间件（必需认证）
// 每次请求都按令牌sub回查用户表，令牌签发后被删除的用户视为未认证
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.AbortErrorResponse(c, response.UnauthorizedError(err.Error()))
			return
		}

		var u user.User
		if err := database.GetDB().First(&u, claims.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				dto.AbortErrorResponse(c, response.UnauthorizedError("用户不存在或已被删除"))
				return
			}
			dto.AbortErrorResponse(c, response.UnauthorizedError("认证校验失败"))
			return
		}

		// 将用户信息存入上下文（以数据库当前数据为准）
		c.Set("user_id", u.ID)
		c.Set("username", u.Username)
		c.Set("user_role", u.Role)
		c.Next()
	}
}

// OptionalJWTAuth 可选的 JWT 认证中间件（不强制要求认证，但如果有token则解析）
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			var u user.User
			if err := database.GetDB().First(&u, claims.UserID).Error; err == nil {
				c.Set("user_id", u.ID)
				c.Set("username", u.Username)
				c.Set("user_role", u.Role)
			}
		}
		// 无论是否有 token，都继续执行
		c.Next()
	}
}

// RequireAdmin 仅允许 admin 角色，需在 JWTAuth 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role.(string) != user.RoleAdmin {
			dto.AbortErrorResponse(c, response.UnauthorizedError("需要管理员权限"))
			return
		}
		c.Next()
	}
}
