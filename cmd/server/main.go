package main

import (
	"fmt"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/database"
	"fiberloom/backend/internal/route"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 开发模式下刷新接口文档
	config.InitProgram()

	// 3. 初始化数据库
	database.InitDatabase()

	// 4. 设置路由
	r := route.SetupRouter()

	// 5. 启动服务
	r.Run(fmt.Sprintf(":%d", config.Conf.Server.Port))
}
