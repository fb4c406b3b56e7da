package pagecontent

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPageContentRouter 设置页面内容路由
func SetupPageContentRouter(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewPageContentHandler(db)

	rows := r.Group("/page-content")
	{
		rows.GET("", handler.ListContent)                  // 内容块列表
		rows.GET("/:page/:section", handler.GetBySection)  // 复合键查询
	}

	rowsAuth := r.Group("/page-content")
	rowsAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		rowsAuth.POST("", handler.CreateContent)          // 创建内容块（需要认证）
		rowsAuth.PATCH("/:id", handler.UpdateContent)     // 更新内容块（需要认证）
		rowsAuth.DELETE("/:id", handler.DeleteContent)    // 删除内容块（需要认证）
	}
}
