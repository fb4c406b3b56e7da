package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/about"
	"fiberloom/backend/internal/auth"
	"fiberloom/backend/internal/blog"
	"fiberloom/backend/internal/contact"
	"fiberloom/backend/internal/database"
	"fiberloom/backend/internal/pagecontent"
	"fiberloom/backend/internal/product"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()

	// API路由统一挂在 /api 下
	api := r.Group("/api")

	product.SetupProductRoutes(api, db)
	blog.SetupBlogRoutes(api, db)
	about.SetupAboutRouter(api, db)
	contact.SetupContactRouter(api, db)
	pagecontent.SetupPageContentRouter(api, db)
	auth.SetupAuthRoutes(api, db)

	// Swagger文档
	api.StaticFile("/docs", "./docs/swagger.json")

	// 上传文件静态服务
	r.Static(config.Conf.Upload.PublicPath, config.Conf.Upload.Dir)
}

func SetupRouter() *gin.Engine {
	if config.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:3000" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r)

	return r
}
