package about

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAboutRouter 设置关于页区块路由
func SetupAboutRouter(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewAboutHandler(db)

	sections := r.Group("/about-sections")
	{
		sections.GET("", handler.ListSections)    // 区块列表
		sections.GET("/:id", handler.GetSection)  // 区块详情
	}

	sectionsAuth := r.Group("/about-sections")
	sectionsAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		sectionsAuth.POST("", handler.CreateSection)          // 创建区块（需要认证）
		sectionsAuth.PATCH("/:id", handler.UpdateSection)     // 更新区块（需要认证）
		sectionsAuth.DELETE("/:id", handler.DeleteSection)    // 删除区块（需要认证）
	}
}
