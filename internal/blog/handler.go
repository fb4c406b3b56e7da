package blog

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/upload"
)

type BlogHandler struct {
	blogService *BlogService
}

func NewBlogHandler(db *gorm.DB) *BlogHandler {
	repo := NewArticleRepository(db)
	return &BlogHandler{
		blogService: NewBlogService(repo, upload.NewService()),
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

// ListArticles 获取文章列表
// @Summary 获取文章列表（分页，支持仅已发布过滤）
// @Tags Blog
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param published_only query bool false "仅已发布"
// @Success 200 {object} response.Response{data=dto.ArticleListResponse}
// @Router /blog-articles [get]
func (h *BlogHandler) ListArticles(c *gin.Context) {
	var q dto.ListArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, berr := h.blogService.ListArticles(q)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, result)
}

// CreateArticle 创建文章
// @Summary 创建文章（slug缺省由标题派生；可带标签名列表）
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 201 {object} response.Response
// @Router /blog-articles [post]
func (h *BlogHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	a, berr := h.blogService.CreateArticle(req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.CreatedResponse(c, a)
}

// GetArticle 获取文章详情
// @Summary 获取文章详情（含标签与图片）
// @Tags Blog
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /blog-articles/{id} [get]
func (h *BlogHandler) GetArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	a, berr := h.blogService.GetArticle(id)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, a)
}

// GetArticleBySlug 按slug获取文章
// @Summary 按slug获取文章详情
// @Tags Blog
// @Produce json
// @Param slug path string true "文章slug"
// @Success 200 {object} response.Response
// @Router /blog-articles/slug/{slug} [get]
func (h *BlogHandler) GetArticleBySlug(c *gin.Context) {
	a, berr := h.blogService.GetArticleBySlug(c.Param("slug"))
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, a)
}

// UpdateArticle 更新文章
// @Summary 更新文章（发布状态翻转同步维护published_at）
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.UpdateArticleRequest true "更新文章请求"
// @Success 200 {object} response.Response
// @Router /blog-articles/{id} [patch]
func (h *BlogHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	a, berr := h.blogService.UpdateArticle(id, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, a)
}

// DeleteArticle 删除文章
// @Summary 删除文章（连同标签关联、图片记录与文件）
// @Tags Blog
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /blog-articles/{id} [delete]
func (h *BlogHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if berr := h.blogService.DeleteArticle(id); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}

// UploadImage 上传文章图片
// @Summary 上传文章图片（multipart，可标记封面）
// @Tags Blog
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "文章ID"
// @Param file formData file true "图片文件"
// @Param is_cover formData bool false "是否封面"
// @Param sort_order formData int false "排序"
// @Success 201 {object} response.Response
// @Router /blog-articles/{id}/images [post]
func (h *BlogHandler) UploadImage(c *gin.Context) {
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

	isCover := c.PostForm("is_cover") == "true"
	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sort_order", "0"))

	img, berr := h.blogService.AddImage(id, fileHeader, isCover, sortOrder)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.CreatedResponse(c, img)
}

// UpdateImage 更新文章图片属性
// @Summary 更新文章图片属性（封面标记、排序）
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "图片ID"
// @Param request body dto.UpdateArticleImageRequest true "更新图片请求"
// @Success 200 {object} response.Response
// @Router /blog-articles/images/{id} [patch]
func (h *BlogHandler) UpdateImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	img, berr := h.blogService.UpdateImage(id, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, img)
}

// DeleteImage 删除文章图片
// @Summary 删除文章图片（连同存储文件）
// @Tags Blog
// @Produce json
// @Param id path int true "图片ID"
// @Success 200 {object} response.Response
// @Router /blog-articles/images/{id} [delete]
func (h *BlogHandler) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if berr := h.blogService.DeleteImage(id); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}

// ---- 标签 ----

// ListTags 获取标签列表
// @Summary 获取标签列表
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Response
// @Router /blog-tags [get]
func (h *BlogHandler) ListTags(c *gin.Context) {
	tags, berr := h.blogService.ListTags()
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, tags)
}

// CreateTag 创建标签
// @Summary 创建标签（名称/slug唯一）
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "创建标签请求"
// @Success 201 {object} response.Response
// @Router /blog-tags [post]
func (h *BlogHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	tag, berr := h.blogService.CreateTag(req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.CreatedResponse(c, tag)
}

// UpdateTag 更新标签
// @Summary 更新标签
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "标签ID"
// @Param request body dto.UpdateTagRequest true "更新标签请求"
// @Success 200 {object} response.Response
// @Router /blog-tags/{id} [patch]
func (h *BlogHandler) UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	tag, berr := h.blogService.UpdateTag(id, req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, tag)
}

// DeleteTag 删除标签
// @Summary 删除标签（清理文章关联）
// @Tags Blog
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response
// @Router /blog-tags/{id} [delete]
func (h *BlogHandler) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if berr := h.blogService.DeleteTag(id); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}
