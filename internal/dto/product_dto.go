package dto

import (
	"fiberloom/backend/internal/model/product"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Description   string   `json:"description"`
	Category      string   `json:"category" binding:"required,oneof=wall-hanging rug"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Status        string   `json:"status" binding:"omitempty,oneof=available sold draft"`
	StockQuantity int      `json:"stock_quantity" binding:"omitempty,gte=0"`
	DimWidth      float64  `json:"dim_width" binding:"omitempty,gt=0"`
	DimHeight     float64  `json:"dim_height" binding:"omitempty,gt=0"`
	DimUnit       string   `json:"dim_unit" binding:"omitempty,oneof=cm in"`
	Materials     []string `json:"materials"`
}

// UpdateProductRequest 更新商品请求，所有字段可选
type UpdateProductRequest struct {
	Name          *string   `json:"name" binding:"omitempty,max=255"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category" binding:"omitempty,oneof=wall-hanging rug"`
	Price         *float64  `json:"price" binding:"omitempty,gt=0"`
	Status        *string   `json:"status" binding:"omitempty,oneof=available sold draft"`
	StockQuantity *int      `json:"stock_quantity" binding:"omitempty,gte=0"`
	DimWidth      *float64  `json:"dim_width" binding:"omitempty,gt=0"`
	DimHeight     *float64  `json:"dim_height" binding:"omitempty,gt=0"`
	DimUnit       *string   `json:"dim_unit" binding:"omitempty,oneof=cm in"`
	Materials     *[]string `json:"materials"`
}

// ListProductsQuery 商品列表查询参数
type ListProductsQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category" binding:"omitempty,oneof=wall-hanging rug"`
	Status   string `form:"status" binding:"omitempty,oneof=available sold draft"`
	// 按名称/描述模糊搜索
	Search string `form:"search"`
}

// UpdateProductImageRequest 更新商品图片请求
type UpdateProductImageRequest struct {
	ShowOnHome *bool `json:"show_on_home"`
	SortOrder  *int  `json:"sort_order"`
}

// ProductListResponse 商品列表响应（分页）
type ProductListResponse struct {
	Data       []product.Product `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ProductStatistics 商品统计
type ProductStatistics struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
	ByStatus   map[string]int64 `json:"by_status"`
}
