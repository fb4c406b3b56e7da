// Package seeder 种子数据导入：商品fixtures、默认管理员与页面内容
package seeder

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/model/user"
)

// ErrCleanRefused clean模式在release下被拒绝
var ErrCleanRefused = errors.New("clean mode is not allowed in release mode")

// Report 单次运行的统计结果
type Report struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run 导入种子数据；clean为真时先清空商品表
// clean模式在release模式下拒绝执行
func (s *Seeder) Run(clean bool) (*Report, error) {
	if clean {
		if config.IsRelease() {
			return nil, ErrCleanRefused
		}
		if err := s.cleanProducts(); err != nil {
			return nil, fmt.Errorf("清空商品表失败: %w", err)
		}
		log.Println("[seeder] 已清空商品数据")
	}

	report := &Report{}
	for i := range productFixtures {
		if err := s.seedProduct(&productFixtures[i], report); err != nil {
			return nil, err
		}
	}

	if err := s.seedAdminUser(); err != nil {
		return nil, err
	}
	if err := s.seedPageContent(); err != nil {
		return nil, err
	}

	log.Printf("[seeder] 完成: created=%d updated=%d skipped=%d",
		report.Created, report.Updated, report.Skipped)
	return report, nil
}

func (s *Seeder) cleanProducts() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&product.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&product.Product{}).Error
	})
}

// seedProduct 按名称精确匹配：缺失则创建，字段有差异则更新，否则跳过
func (s *Seeder) seedProduct(fixture *product.Product, report *Report) error {
	var existing product.Product
	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, id asc")
	}).Where("name = ?", fixture.Name).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := *fixture
		// 拷贝图片切片，避免Create回写ID污染fixture
		fresh.Images = make([]product.ProductImage, len(fixture.Images))
		copy(fresh.Images, fixture.Images)
		if err := s.db.Create(&fresh).Error; err != nil {
			return fmt.Errorf("创建商品 %q 失败: %w", fixture.Name, err)
		}
		report.Created++
		log.Printf("[seeder] 创建商品: %s", fixture.Name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("查询商品 %q 失败: %w", fixture.Name, err)
	}

	if productChanged(&existing, fixture) {
		if err := s.updateProduct(&existing, fixture); err != nil {
			return fmt.Errorf("更新商品 %q 失败: %w", fixture.Name, err)
		}
		report.Updated++
		log.Printf("[seeder] 更新商品: %s", fixture.Name)
		return nil
	}

	report.Skipped++
	return nil
}

// updateProduct 回写fixture字段并整体替换图片行
func (s *Seeder) updateProduct(existing, fixture *product.Product) error {
	existing.Description = fixture.Description
	existing.Category = fixture.Category
	existing.Price = fixture.Price
	existing.Status = fixture.Status
	existing.StockQuantity = fixture.StockQuantity
	existing.DimWidth = fixture.DimWidth
	existing.DimHeight = fixture.DimHeight
	existing.DimUnit = fixture.DimUnit
	existing.Materials = fixture.Materials

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Save(existing).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", existing.ID).Delete(&product.ProductImage{}).Error; err != nil {
			return err
		}
		for _, img := range fixture.Images {
			row := img
			row.ID = 0
			row.ProductID = existing.ID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// productChanged 字段逐一比较，结构化字段经JSON序列化后比较
func productChanged(existing, fixture *product.Product) bool {
	if existing.Description != fixture.Description ||
		existing.Category != fixture.Category ||
		existing.Price != fixture.Price ||
		existing.Status != fixture.Status ||
		existing.StockQuantity != fixture.StockQuantity ||
		existing.DimWidth != fixture.DimWidth ||
		existing.DimHeight != fixture.DimHeight ||
		existing.DimUnit != fixture.DimUnit {
		return true
	}
	if jsonString(existing.Materials) != jsonString(fixture.Materials) {
		return true
	}
	return imagesJSON(existing.Images) != imagesJSON(fixture.Images)
}

// imageFingerprint 参与比较的图片字段，ID与时间戳不参与
type imageFingerprint struct {
	URL        string `json:"url"`
	ShowOnHome bool   `json:"show_on_home"`
	SortOrder  int    `json:"sort_order"`
}

func imagesJSON(images []product.ProductImage) string {
	prints := make([]imageFingerprint, 0, len(images))
	for _, img := range images {
		prints = append(prints, imageFingerprint{
			URL:        img.URL,
			ShowOnHome: img.ShowOnHome,
			SortOrder:  img.SortOrder,
		})
	}
	return jsonString(prints)
}

func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// seedAdminUser 缺省管理员不存在时创建
func (s *Seeder) seedAdminUser() error {
	username := config.Conf.Seed.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := config.Conf.Seed.AdminPassword
	if password == "" {
		password = "admin123"
	}

	var existing user.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("查询管理员失败: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("加密管理员密码失败: %w", err)
	}

	admin := user.User{
		Username: username,
		Password: string(hash),
		Role:     user.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}
	log.Printf("[seeder] 创建管理员: %s", username)
	return nil
}

// seedPageContent 默认页面内容块，已存在的(page,section)不覆盖
func (s *Seeder) seedPageContent() error {
	for _, fixture := range pageContentFixtures {
		var count int64
		if err := s.db.Model(&content.PageContent{}).
			Where("page = ? AND section = ?", fixture.Page, fixture.Section).
			Count(&count).Error; err != nil {
			return fmt.Errorf("查询页面内容失败: %w", err)
		}
		if count > 0 {
			continue
		}

		row := fixture
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("创建页面内容 (%s,%s) 失败: %w", fixture.Page, fixture.Section, err)
		}
		log.Printf("[seeder] 创建页面内容: %s/%s", fixture.Page, fixture.Section)
	}
	return nil
}
