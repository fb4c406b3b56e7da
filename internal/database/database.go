package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/model"
)

var (
	PostgresDB *gorm.DB
	// RedisDB 可为空：Redis不可用时登录限流等功能会降级关闭
	RedisDB *RedisClient
)

func InitDatabase() {
	initPostgres()
	initRedis()
}

func initPostgres() {
	databaseConf := config.Conf.Database

	// 设置默认日志级别
	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var err error
	PostgresDB, err = InitPostgres(
		&PostgresConfig{
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}
	log.Println("[fiberloom-cms] 数据库连接成功")

	// 初始化数据库表
	err = model.InitTable(PostgresDB)
	if err != nil {
		panic(err)
	}
}

func initRedis() {
	redisConf := config.Conf.Redis
	if redisConf.Host == "" {
		log.Println("[fiberloom-cms] 未配置Redis，登录限流关闭")
		return
	}

	client, err := InitRedis(&RedisConfig{
		ServiceName: "fiberloom-cms",
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
		PoolSize:    redisConf.PoolSize,
	})
	if err != nil {
		log.Printf("[fiberloom-cms] Redis不可用: %v，登录限流关闭", err)
		return
	}
	RedisDB = client
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
