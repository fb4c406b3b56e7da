// Package product 商品相关模型
package product

import (
	"time"
)

// 商品分类
const (
	CategoryWallHanging = "wall-hanging"
	CategoryRug         = "rug"
)

// 商品状态
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusDraft     = "draft"
)

// ValidCategory 校验分类枚举
func ValidCategory(c string) bool {
	return c == CategoryWallHanging || c == CategoryRug
}

// ValidStatus 校验状态枚举
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusSold || s == StatusDraft
}

// Product 商品表
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	// 分类: wall-hanging, rug
	Category string  `gorm:"type:varchar(50);not null;index" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	// 状态: available, sold, draft
	Status        string `gorm:"type:varchar(50);not null;default:'draft';index" json:"status"`
	StockQuantity int    `gorm:"default:0" json:"stock_quantity"`
	// 尺寸
	DimWidth  float64 `gorm:"column:dim_width" json:"dim_width"`
	DimHeight float64 `gorm:"column:dim_height" json:"dim_height"`
	DimUnit   string  `gorm:"column:dim_unit;type:varchar(10);default:'cm'" json:"dim_unit"`
	// 材质列表
	Materials []string `gorm:"type:jsonb;serializer:json" json:"materials"`
	// 商品图片，删除商品时级联删除
	Images    []ProductImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ProductImage 商品图片表
type ProductImage struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	URL string `gorm:"type:varchar(500);not null" json:"url"`
	// 是否展示在首页图墙
	ShowOnHome bool `gorm:"default:false;index" json:"show_on_home"`
	SortOrder  int  `gorm:"default:0" json:"sort_order"`
	ProductID  uint `gorm:"not null;index" json:"product_id"`
	// 反向引用，首页图墙查询时预加载
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
