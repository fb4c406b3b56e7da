package blog

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupBlogRoutes 设置博客相关路由
func SetupBlogRoutes(r *gin.RouterGroup, db *gorm.DB) {
	blogHandler := NewBlogHandler(db)

	// 文章路由 - 公开
	articles := r.Group("/blog-articles")
	{
		articles.GET("", blogHandler.ListArticles)              // 文章列表
		articles.GET("/slug/:slug", blogHandler.GetArticleBySlug) // 按slug获取文章
		articles.GET("/:id", blogHandler.GetArticle)            // 文章详情
	}

	// 文章路由 - 需要认证
	articlesAuth := r.Group("/blog-articles")
	articlesAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		articlesAuth.POST("", blogHandler.CreateArticle)            // 创建文章（需要认证）
		articlesAuth.PATCH("/:id", blogHandler.UpdateArticle)       // 更新文章（需要认证）
		articlesAuth.DELETE("/:id", blogHandler.DeleteArticle)      // 删除文章（需要认证）
		articlesAuth.POST("/:id/images", blogHandler.UploadImage)   // 上传文章图片（需要认证）
		articlesAuth.PATCH("/images/:id", blogHandler.UpdateImage)  // 更新图片属性（需要认证）
		articlesAuth.DELETE("/images/:id", blogHandler.DeleteImage) // 删除图片（需要认证）
	}

	// 标签路由
	tags := r.Group("/blog-tags")
	{
		tags.GET("", blogHandler.ListTags) // 标签列表
	}

	tagsAuth := r.Group("/blog-tags")
	tagsAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		tagsAuth.POST("", blogHandler.CreateTag)         // 创建标签（需要认证）
		tagsAuth.PATCH("/:id", blogHandler.UpdateTag)    // 更新标签（需要认证）
		tagsAuth.DELETE("/:id", blogHandler.DeleteTag)   // 删除标签（需要认证）
	}
}
