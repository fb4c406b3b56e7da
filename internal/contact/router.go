package contact

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupContactRouter 设置联系方式路由
func SetupContactRouter(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewContactHandler(db)

	links := r.Group("/contact-links")
	{
		links.GET("", handler.ListLinks)   // 联系方式列表
		links.GET("/:id", handler.GetLink) // 联系方式详情
	}

	linksAuth := r.Group("/contact-links")
	linksAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		linksAuth.POST("", handler.CreateLink)        // 创建联系方式（需要认证）
		linksAuth.PATCH("/:id", handler.UpdateLink)   // 更新联系方式（需要认证）
		linksAuth.DELETE("/:id", handler.DeleteLink)  // 删除联系方式（需要认证）
	}
}
