package product

import (
	"errors"
	"mime/multipart"

	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/upload"
)

type ProductService struct {
	repo    *ProductRepository
	uploads *upload.Service
}

func NewProductService(repo *ProductRepository, uploads *upload.Service) *ProductService {
	return &ProductService{repo: repo, uploads: uploads}
}

// CreateProduct 创建商品
func (s *ProductService) CreateProduct(req dto.CreateProductRequest) (*product.Product, *response.BusinessError) {
	status := req.Status
	if status == "" {
		status = product.StatusDraft
	}
	dimUnit := req.DimUnit
	if dimUnit == "" {
		dimUnit = "cm"
	}

	p := &product.Product{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		Status:        status,
		StockQuantity: req.StockQuantity,
		DimWidth:      req.DimWidth,
		DimHeight:     req.DimHeight,
		DimUnit:       dimUnit,
		Materials:     req.Materials,
	}

	if err := s.repo.Create(p); err != nil {
		// 持久化错误统一按参数错误返回，不暴露数据库细节
		return nil, response.BadRequestError("创建商品失败")
	}
	return p, nil
}

// GetProduct 按ID获取商品
func (s *ProductService) GetProduct(id uint) (*product.Product, *response.BusinessError) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("商品不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询商品失败"), response.WithError(err))
	}
	return p, nil
}

// ListProducts 分页列表
func (s *ProductService) ListProducts(q dto.ListProductsQuery) (*dto.ProductListResponse, *response.BusinessError) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	products, total, err := s.repo.List(q)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("查询商品列表失败"), response.WithError(err))
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &dto.ProductListResponse{
		Data:       products,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateProduct 更新商品，仅更新请求中出现的字段
func (s *ProductService) UpdateProduct(id uint, req dto.UpdateProductRequest) (*product.Product, *response.BusinessError) {
	p, berr := s.GetProduct(id)
	if berr != nil {
		return nil, berr
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	if req.DimWidth != nil {
		p.DimWidth = *req.DimWidth
	}
	if req.DimHeight != nil {
		p.DimHeight = *req.DimHeight
	}
	if req.DimUnit != nil {
		p.DimUnit = *req.DimUnit
	}
	if req.Materials != nil {
		p.Materials = *req.Materials
	}

	if err := s.repo.Update(p); err != nil {
		return nil, response.BadRequestError("更新商品失败")
	}
	return p, nil
}

// DeleteProduct 删除商品：先尽力删除图片文件，文件删除失败不阻断数据库删除
func (s *ProductService) DeleteProduct(id uint) *response.BusinessError {
	p, berr := s.GetProduct(id)
	if berr != nil {
		return berr
	}

	for _, img := range p.Images {
		s.uploads.DeleteByURL(img.URL)
	}

	if err := s.repo.Delete(id); err != nil {
		return response.NewBusinessError(response.WithErrorMessage("删除商品失败"), response.WithError(err))
	}
	return nil
}

// Statistics 商品计数统计：总数、各分类、各状态
func (s *ProductService) Statistics() (*dto.ProductStatistics, *response.BusinessError) {
	stats := &dto.ProductStatistics{
		ByCategory: make(map[string]int64, 2),
		ByStatus:   make(map[string]int64, 3),
	}

	total, err := s.repo.CountWhere("")
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("统计查询失败"), response.WithError(err))
	}
	stats.Total = total

	for _, cat := range []string{product.CategoryWallHanging, product.CategoryRug} {
		n, err := s.repo.CountWhere("category = ?", cat)
		if err != nil {
			return nil, response.NewBusinessError(response.WithErrorMessage("统计查询失败"), response.WithError(err))
		}
		stats.ByCategory[cat] = n
	}
	for _, st := range []string{product.StatusAvailable, product.StatusSold, product.StatusDraft} {
		n, err := s.repo.CountWhere("status = ?", st)
		if err != nil {
			return nil, response.NewBusinessError(response.WithErrorMessage("统计查询失败"), response.WithError(err))
		}
		stats.ByStatus[st] = n
	}
	return stats, nil
}

// ListByCategory 分类页商品（仅available）
func (s *ProductService) ListByCategory(category string) ([]product.Product, *response.BusinessError) {
	if !product.ValidCategory(category) {
		return nil, response.BadRequestError("无效的商品分类")
	}
	products, err := s.repo.ListByCategory(category)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("查询分类商品失败"), response.WithError(err))
	}
	return products, nil
}

// HomeGridImages 首页图墙图片
func (s *ProductService) HomeGridImages() ([]product.ProductImage, *response.BusinessError) {
	images, err := s.repo.HomeGridImages()
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("查询首页图片失败"), response.WithError(err))
	}
	return images, nil
}

// AddImage 上传并挂载商品图片
func (s *ProductService) AddImage(productID uint, fileHeader *multipart.FileHeader, showOnHome bool, sortOrder int) (*product.ProductImage, *response.BusinessError) {
	if _, berr := s.GetProduct(productID); berr != nil {
		return nil, berr
	}

	_, url, err := s.uploads.SaveImage(fileHeader)
	if err != nil {
		if errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrUnsupportedType) {
			return nil, response.BadRequestError(err.Error())
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("保存图片失败"), response.WithError(err))
	}

	img := &product.ProductImage{
		URL:        url,
		ShowOnHome: showOnHome,
		SortOrder:  sortOrder,
		ProductID:  productID,
	}
	if err := s.repo.CreateImage(img); err != nil {
		// 入库失败时回收已写入的文件
		s.uploads.DeleteByURL(url)
		return nil, response.BadRequestError("保存图片记录失败")
	}
	return img, nil
}

// UpdateImage 更新图片属性（首页展示、排序）
func (s *ProductService) UpdateImage(id uint, req dto.UpdateProductImageRequest) (*product.ProductImage, *response.BusinessError) {
	img, err := s.repo.GetImageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("图片不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询图片失败"), response.WithError(err))
	}

	if req.ShowOnHome != nil {
		img.ShowOnHome = *req.ShowOnHome
	}
	if req.SortOrder != nil {
		img.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateImage(img); err != nil {
		return nil, response.BadRequestError("更新图片失败")
	}
	return img, nil
}

// DeleteImage 删除单张图片：先删行，再尽力删文件
func (s *ProductService) DeleteImage(id uint) *response.BusinessError {
	img, err := s.repo.GetImageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("图片不存在")
		}
		return response.NewBusinessError(response.WithErrorMessage("查询图片失败"), response.WithError(err))
	}

	if err := s.repo.DeleteImage(id); err != nil {
		return response.NewBusinessError(response.WithErrorMessage("删除图片失败"), response.WithError(err))
	}
	s.uploads.DeleteByURL(img.URL)
	return nil
}
