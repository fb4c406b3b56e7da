package product

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/upload"
)

type ProductHandler struct {
	productService *ProductService
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	repo := NewProductRepository(db)
	return &ProductHandler{
		productService: NewProductService(repo, upload.NewService()),
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的ID"),
		))
		return 0, false
	}
	return uint(id), true
}

// ListProducts 获取商品列表
// @Summary 获取商品列表（分页，支持分类/状态/搜索过滤）
// @Tags Product
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param category query string false "分类" Enums(wall-hanging, rug)
// @Param status query string false "状态" Enums(available, sold, draft)
// @Param search query string false "名称/描述模糊搜索"
// @Success 200 {object} response.Response{data=dto.ProductListResponse}
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q dto.ListProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, berr := h.productService.ListProducts(q)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, result)
}

// CreateProduct 创建商品
// @Summary 创建商品
// @Tags Product
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "创建商品请求"
// @Success 201 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	p, berr := h.productService.CreateProduct(req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.CreatedResponse(c, p)
}

// GetProduct 获取商品详情
// @Summary 获取商品详情（含图片）
// @Tags Product
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, berr := h.productService.GetProduct(id)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, p)
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "商品ID"
// @Param request body dto.UpdateProductRequest true "更新商品请求"
// @Success 200 {object} response.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	p, berr := h.productService.UpdateProduct(id, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, p)
}

// DeleteProduct 删除商品
// @Summary 删除商品（级联删除图片记录并清理文件）
// @Tags Product
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if berr := h.productService.DeleteProduct(id); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}

// GetStatistics 商品统计
// @Summary 商品统计（总数、按分类、按状态）
// @Tags Product
// @Produce json
// @Success 200 {object} response.Response{data=dto.ProductStatistics}
// @Router /products/statistics [get]
func (h *ProductHandler) GetStatistics(c *gin.Context) {
	stats, berr := h.productService.Statistics()
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, stats)
}

// ListByCategory 分类页商品列表
// @Summary 分类页商品列表（仅available，最新优先）
// @Tags Product
// @Produce json
// @Param category path string true "分类" Enums(wall-hanging, rug)
// @Success 200 {object} response.Response
// @Router /products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, berr := h.productService.ListByCategory(c.Param("category"))
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, products)
}

// HomeGrid 首页图墙
// @Summary 首页图墙图片（show_on_home，含所属商品）
// @Tags Product
// @Produce json
// @Success 200 {object} response.Response
// @Router /products/home-grid [get]
func (h *ProductHandler) HomeGrid(c *gin.Context) {
	images, berr := h.productService.HomeGridImages()
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, images)
}

// UploadImage 上传商品图片
// @Summary 上传商品图片（multipart，JPEG/PNG/WebP，最大5MB）
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "商品ID"
// @Param file formData file true "图片文件"
// @Param show_on_home formData bool false "是否展示在首页"
// @Param sort_order formData int false "排序"
// @Success 201 {object} response.Response
// @Router /products/{id}/images [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("缺少图片文件"),
		))
		return
	}

	showOnHome := c.PostForm("show_on_home") == "true"
	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sort_order", "0"))

	img, berr := h.productService.AddImage(id, fileHeader, showOnHome, sortOrder)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.CreatedResponse(c, img)
}

// UpdateImage 更新商品图片属性
// @Summary 更新商品图片属性（首页展示、排序）
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "图片ID"
// @Param request body dto.UpdateProductImageRequest true "更新图片请求"
// @Success 200 {object} response.Response
// @Router /products/images/{id} [patch]
func (h *ProductHandler) UpdateImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	img, berr := h.productService.UpdateImage(id, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, img)
}

// DeleteImage 删除商品图片
// @Summary 删除商品图片（连同存储文件）
// @Tags Product
// @Produce json
// @Param id path int true "图片ID"
// @Success 200 {object} response.Response
// @Router /products/images/{id} [delete]
func (h *ProductHandler) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if berr := h.productService.DeleteImage(id); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}
