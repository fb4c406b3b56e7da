package auth

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(r *gin.RouterGroup, db *gorm.DB) {
	authHandler := NewAuthHandler(db)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.LoginRateLimit(), authHandler.Login) // 登录（限流）
	}

	authRequired := r.Group("/auth")
	authRequired.Use(middleware.JWTAuth()) // 需要认证
	{
		authRequired.GET("/profile", authHandler.Profile)                  // 当前用户信息
		authRequired.PATCH("/credentials", authHandler.UpdateCredentials)  // 修改凭据
	}
}
