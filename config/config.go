// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	JWT      JWTConfig      `koanf:"jwt"`
	Upload   UploadConfig   `koanf:"upload"`
	Seed     SeedConfig     `koanf:"seed"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时，默认1
}

type UploadConfig struct {
	// 本地存储目录
	Dir string `koanf:"dir"`
	// 生成公开URL时的前缀，例如 http://localhost:8080/uploads
	BaseURL string `koanf:"base_url"`
	// 静态服务挂载路径
	PublicPath string `koanf:"public_path"`
	// 单文件大小上限（MB）
	MaxSizeMB int64 `koanf:"max_size_mb"`
}

type SeedConfig struct {
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`
}

// envKeyMap 兼容两套数据库环境变量命名（POSTGRES_* / DATABASE_*），
// 以及部署平台常用的 PORT / JWT_SECRET / JWT_EXPIRATION
var envKeyMap = map[string]string{
	"PORT":              "server.port",
	"JWT_SECRET":        "jwt.secret",
	"JWT_EXPIRATION":    "jwt.expire_time",
	"POSTGRES_HOST":     "database.host",
	"POSTGRES_PORT":     "database.port",
	"POSTGRES_USER":     "database.username",
	"POSTGRES_PASSWORD": "database.password",
	"POSTGRES_DB":       "database.database",
	"DATABASE_HOST":     "database.host",
	"DATABASE_PORT":     "database.port",
	"DATABASE_USER":     "database.username",
	"DATABASE_PASSWORD": "database.password",
	"DATABASE_NAME":     "database.database",
	"UPLOAD_DIR":        "upload.dir",
	"UPLOAD_BASE_URL":   "upload.base_url",
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if err = godotenv.Load(); err != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", err)
			err = nil
		}

		k = koanf.New(".")

		// 加载配置文件
		if err = k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			err = fmt.Errorf("加载配置文件失败: %w", err)
			return
		}

		// 加载环境变量（会覆盖配置文件）
		if err = k.Load(env.Provider("", ".", func(s string) string {
			if mapped, ok := envKeyMap[s]; ok {
				return mapped
			}
			return strings.Replace(strings.ToLower(s), "_", ".", -1)
		}), nil); err != nil {
			log.Printf("加载环境变量失败: %v", err)
			err = nil
		}

		// 解析到结构体
		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			err = fmt.Errorf("解析配置失败: %w", err)
			return
		}

		applyDefaults(Conf)

		// 转换时间单位
		Conf.Server.ReadTimeout = Conf.Server.ReadTimeout * time.Second
		Conf.Server.WriteTimeout = Conf.Server.WriteTimeout * time.Second
	})

	return err
}

// applyDefaults 填充缺省配置并做启动期校验
func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.JWT.ExpireTime == 0 {
		c.JWT.ExpireTime = 1 // 默认1小时
	}
	if c.JWT.Secret == "" {
		log.Println("警告: 未配置 jwt.secret，令牌签名不安全")
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads"
	}
	if c.Upload.PublicPath == "" {
		c.Upload.PublicPath = "/uploads"
	}
	if c.Upload.BaseURL == "" {
		c.Upload.BaseURL = fmt.Sprintf("http://localhost:%d%s", c.Server.Port, c.Upload.PublicPath)
	}
	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = 5
	}
}

// MustLoad 加载配置，失败则 panic
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}

// IsRelease 当前是否运行在生产模式
func IsRelease() bool {
	return Conf != nil && Conf.Server.Mode == "release"
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.String(key)
}

// GetInt 获取整数配置
func GetInt(key string) int {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Int(key)
}

// GetBool 获取布尔配置
func GetBool(key string) bool {
	if k == nil {
		log.Fatal("配置未初始化")
	}
	return k.Bool(key)
}

// Reload 重新加载配置
func Reload(configPath string) error {
	if k == nil {
		return fmt.Errorf("配置未初始化")
	}

	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return err
	}

	Conf = &AppConfig{}
	if err := k.Unmarshal("", Conf); err != nil {
		return err
	}

	applyDefaults(Conf)

	Conf.Server.ReadTimeout = Conf.Server.ReadTimeout * time.Second
	Conf.Server.WriteTimeout = Conf.Server.WriteTimeout * time.Second

	return nil
}
