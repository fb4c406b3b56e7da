package seeder

import (
	"testing"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/model/user"
	"fiberloom/backend/internal/testutils"
	"gorm.io/gorm"
)

func setupSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{Mode: "debug"},
	}

	db := testutils.SetupTestDB(t)
	return NewSeeder(db), db
}

// TestSeeder_Idempotent 测试幂等性：第二次运行零创建零更新
func TestSeeder_Idempotent(t *testing.T) {
	s, _ := setupSeeder(t)

	first, err := s.Run(false)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if first.Created != len(productFixtures) {
		t.Errorf("First run created = %d, want %d", first.Created, len(productFixtures))
	}
	if first.Updated != 0 || first.Skipped != 0 {
		t.Errorf("First run updated=%d skipped=%d, want 0/0", first.Updated, first.Skipped)
	}

	second, err := s.Run(false)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if second.Created != 0 || second.Updated != 0 {
		t.Errorf("Second run created=%d updated=%d, want 0/0", second.Created, second.Updated)
	}
	if second.Skipped != len(productFixtures) {
		t.Errorf("Second run skipped = %d, want %d", second.Skipped, len(productFixtures))
	}
}

// TestSeeder_UpdatesDriftedRow 测试字段漂移的已有行被更新而不是跳过
func TestSeeder_UpdatesDriftedRow(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 人为漂移一行
	if err := db.Model(&product.Product{}).
		Where("name = ?", productFixtures[0].Name).
		Update("price", 1).Error; err != nil {
		t.Fatalf("Drift update failed: %v", err)
	}

	report, err := s.Run(false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Updated != 1 {
		t.Errorf("Updated = %d, want 1", report.Updated)
	}
	if report.Skipped != len(productFixtures)-1 {
		t.Errorf("Skipped = %d, want %d", report.Skipped, len(productFixtures)-1)
	}

	var restored product.Product
	if err := db.Where("name = ?", productFixtures[0].Name).First(&restored).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if restored.Price != productFixtures[0].Price {
		t.Errorf("Price = %v, want restored to %v", restored.Price, productFixtures[0].Price)
	}
}

// TestSeeder_SeedsProductImages 测试fixture图片随商品一起入库
func TestSeeder_SeedsProductImages(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var seeded product.Product
	if err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, id asc")
	}).Where("name = ?", "Misty Highlands").First(&seeded).Error; err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(seeded.Images) != 2 {
		t.Fatalf("Image count = %d, want 2", len(seeded.Images))
	}
	if seeded.Images[0].URL != "/uploads/seed/misty-highlands-1.jpg" {
		t.Errorf("First image URL = %q", seeded.Images[0].URL)
	}
	if !seeded.Images[0].ShowOnHome {
		t.Errorf("First image should be flagged for the home grid")
	}

	// fixture本体不应被Create回写污染
	for _, img := range productFixtures[0].Images {
		if img.ID != 0 || img.ProductID != 0 {
			t.Errorf("Fixture image mutated: ID=%d ProductID=%d", img.ID, img.ProductID)
		}
	}
}

// TestSeeder_UpdatesDriftedImages 测试图片漂移触发更新并恢复fixture状态
func TestSeeder_UpdatesDriftedImages(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 人为篡改一张图片的URL
	var seeded product.Product
	if err := db.Where("name = ?", "Ember Field").First(&seeded).Error; err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := db.Model(&product.ProductImage{}).
		Where("product_id = ?", seeded.ID).
		Update("url", "/uploads/tampered.jpg").Error; err != nil {
		t.Fatalf("Drift update failed: %v", err)
	}

	report, err := s.Run(false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Updated != 1 {
		t.Errorf("Updated = %d, want 1", report.Updated)
	}

	var restored product.Product
	if err := db.Preload("Images").Where("name = ?", "Ember Field").First(&restored).Error; err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if len(restored.Images) != 1 {
		t.Fatalf("Image count = %d, want 1", len(restored.Images))
	}
	if restored.Images[0].URL != "/uploads/seed/ember-field-1.jpg" {
		t.Errorf("Image URL = %q, want fixture value restored", restored.Images[0].URL)
	}

	// 恢复后再跑一次应全部跳过
	again, err := s.Run(false)
	if err != nil {
		t.Fatalf("Third run failed: %v", err)
	}
	if again.Updated != 0 || again.Created != 0 {
		t.Errorf("Third run created=%d updated=%d, want 0/0", again.Created, again.Updated)
	}
}

// TestSeeder_CleanRefusedInRelease 测试release模式下clean被拒绝
func TestSeeder_CleanRefusedInRelease(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	config.Conf.Server.Mode = "release"
	if _, err := s.Run(true); err != ErrCleanRefused {
		t.Errorf("err = %v, want ErrCleanRefused", err)
	}

	// 数据未被动过
	var count int64
	db.Model(&product.Product{}).Count(&count)
	if count != int64(len(productFixtures)) {
		t.Errorf("Product count = %d after refused clean, want %d", count, len(productFixtures))
	}
}

// TestSeeder_CleanWipesProducts 测试debug模式下clean清空后重建
func TestSeeder_CleanWipesProducts(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	report, err := s.Run(true)
	if err != nil {
		t.Fatalf("Clean run failed: %v", err)
	}
	if report.Created != len(productFixtures) {
		t.Errorf("Created = %d after clean, want %d", report.Created, len(productFixtures))
	}

	var count int64
	db.Model(&product.Product{}).Count(&count)
	if count != int64(len(productFixtures)) {
		t.Errorf("Product count = %d, want %d", count, len(productFixtures))
	}
}

// TestSeeder_AdminUser 测试管理员只创建一次
func TestSeeder_AdminUser(t *testing.T) {
	s, db := setupSeeder(t)

	if _, err := s.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := s.Run(false); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	var count int64
	db.Model(&user.User{}).Where("username = ?", "admin").Count(&count)
	if count != 1 {
		t.Errorf("Admin count = %d, want 1", count)
	}

	var admin user.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("Load admin failed: %v", err)
	}
	if admin.Role != user.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, user.RoleAdmin)
	}
}
