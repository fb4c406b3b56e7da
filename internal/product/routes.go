package product

import (
	"fiberloom/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes 设置商品相关路由
func SetupProductRoutes(r *gin.RouterGroup, db *gorm.DB) {
	// 初始化handler（内部会自动初始化所有依赖）
	productHandler := NewProductHandler(db)

	// 商品路由 - 公开
	products := r.Group("/products")
	{
		products.GET("", productHandler.ListProducts)                       // 商品列表（分页过滤）
		products.GET("/statistics", productHandler.GetStatistics)           // 商品统计
		products.GET("/home-grid", productHandler.HomeGrid)                 // 首页图墙
		products.GET("/category/:category", productHandler.ListByCategory)  // 分类页列表
		products.GET("/:id", productHandler.GetProduct)                     // 商品详情
	}

	// 商品路由 - 需要认证
	productsAuth := r.Group("/products")
	productsAuth.Use(middleware.JWTAuth()) // 需要认证
	{
		productsAuth.POST("", productHandler.CreateProduct)              // 创建商品（需要认证）
		productsAuth.PATCH("/:id", productHandler.UpdateProduct)         // 更新商品（需要认证）
		productsAuth.DELETE("/:id", productHandler.DeleteProduct)        // 删除商品（需要认证）
		productsAuth.POST("/:id/images", productHandler.UploadImage)     // 上传商品图片（需要认证）
		productsAuth.PATCH("/images/:id", productHandler.UpdateImage)    // 更新图片属性（需要认证）
		productsAuth.DELETE("/images/:id", productHandler.DeleteImage)   // 删除图片（需要认证）
	}
}
