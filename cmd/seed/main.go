package main

import (
	"flag"
	"log"
	"os"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/database"
	"fiberloom/backend/internal/seeder"
)

func main() {
	clean := flag.Bool("clean", false, "清空商品表后再导入（release模式下拒绝）")
	flag.Parse()

	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 执行种子导入
	s := seeder.NewSeeder(database.GetDB())
	report, err := s.Run(*clean)
	if err != nil {
		log.Printf("种子导入失败: %v", err)
		os.Exit(1)
	}

	log.Printf("种子导入成功: created=%d updated=%d skipped=%d",
		report.Created, report.Updated, report.Skipped)
}
