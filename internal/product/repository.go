package product

import (
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/product"
)

// ProductRepository 商品仓储层
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ===== Product 基础操作 =====

func (r *ProductRepository) GetByID(id uint) (*product.Product, error) {
	var p product.Product
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order asc, created_at desc")
	}).First(&p, id).Error
	return &p, err
}

func (r *ProductRepository) Create(p *product.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) Update(p *product.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	// 先删图片行再删商品行，等价于外键级联
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&product.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product.Product{}, id).Error
	})
}

// List 分页查询，支持分类/状态过滤与名称描述模糊搜索，默认按创建时间倒序
func (r *ProductRepository) List(q dto.ListProductsQuery) ([]product.Product, int64, error) {
	var products []product.Product
	var total int64

	query := r.db.Model(&product.Product{})
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at desc")
		}).
		Order("created_at desc").
		Offset(offset).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListByCategory 分类页查询：仅available状态，最新优先
func (r *ProductRepository) ListByCategory(category string) ([]product.Product, error) {
	var products []product.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at desc")
		}).
		Where("category = ? AND status = ?", category, product.StatusAvailable).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// CountWhere 条件计数，统计接口用
func (r *ProductRepository) CountWhere(cond string, args ...any) (int64, error) {
	var count int64
	query := r.db.Model(&product.Product{})
	if cond != "" {
		query = query.Where(cond, args...)
	}
	err := query.Count(&count).Error
	return count, err
}

// ===== ProductImage 操作 =====

func (r *ProductRepository) GetImageByID(id uint) (*product.ProductImage, error) {
	var img product.ProductImage
	err := r.db.First(&img, id).Error
	return &img, err
}

func (r *ProductRepository) CreateImage(img *product.ProductImage) error {
	return r.db.Create(img).Error
}

func (r *ProductRepository) UpdateImage(img *product.ProductImage) error {
	return r.db.Save(img).Error
}

func (r *ProductRepository) DeleteImage(id uint) error {
	return r.db.Delete(&product.ProductImage{}, id).Error
}

// HomeGridImages 首页图墙：show_on_home图片带所属商品，按sort_order再按创建时间倒序
func (r *ProductRepository) HomeGridImages() ([]product.ProductImage, error) {
	var images []product.ProductImage
	err := r.db.
		Preload("Product").
		Where("show_on_home = ?", true).
		Order("sort_order asc, created_at desc").
		Find(&images).Error
	return images, err
}
