package about

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/response"
)

type AboutHandler struct {
	db *gorm.DB
}

func NewAboutHandler(db *gorm.DB) *AboutHandler {
	return &AboutHandler{db: db}
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

// ListSections 获取关于页区块列表
// @Summary 获取关于页区块列表（按sort_order排序，可选仅已发布）
// @Tags About
// @Produce json
// @Param published_only query bool false "仅已发布"
// @Success 200 {object} response.Response
// @Router /about-sections [get]
func (h *AboutHandler) ListSections(c *gin.Context) {
	publishedOnly := c.Query("published_only") == "true"

	sections, err := h.RepoListSections(publishedOnly)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询关于页区块失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, sections)
}

// GetSection 获取关于页区块
// @Summary 获取关于页区块详情
// @Tags About
// @Produce json
// @Param id path int true "区块ID"
// @Success 200 {object} response.Response
// @Router /about-sections/{id} [get]
func (h *AboutHandler) GetSection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	section, err := h.RepoGetSection(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("关于页区块不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询关于页区块失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, section)
}

// CreateSection 创建关于页区块
// @Summary 创建关于页区块
// @Tags About
// @Accept json
// @Produce json
// @Param request body dto.CreateAboutSectionRequest true "创建请求"
// @Success 201 {object} response.Response
// @Router /about-sections [post]
func (h *AboutHandler) CreateSection(c *gin.Context) {
	var req dto.CreateAboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	section := &content.AboutSection{
		Title:       req.Title,
		Paragraphs:  req.Paragraphs,
		Image:       req.Image,
		ImageAlt:    req.ImageAlt,
		SortOrder:   req.SortOrder,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		section.IsPublished = *req.IsPublished
	}

	if err := h.db.Create(section).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("创建关于页区块失败"))
		return
	}
	dto.CreatedResponse(c, section)
}

// UpdateSection 更新关于页区块
// @Summary 更新关于页区块
// @Tags About
// @Accept json
// @Produce json
// @Param id path int true "区块ID"
// @Param request body dto.UpdateAboutSectionRequest true "更新请求"
// @Success 200 {object} response.Response
// @Router /about-sections/{id} [patch]
func (h *AboutHandler) UpdateSection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	section, err := h.RepoGetSection(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("关于页区块不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询关于页区块失败"),
			response.WithError(err),
		))
		return
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Paragraphs != nil {
		section.Paragraphs = *req.Paragraphs
	}
	if req.Image != nil {
		section.Image = *req.Image
	}
	if req.ImageAlt != nil {
		section.ImageAlt = *req.ImageAlt
	}
	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		section.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(section).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("更新关于页区块失败"))
		return
	}
	dto.SuccessResponse(c, section)
}

// DeleteSection 删除关于页区块
// @Summary 删除关于页区块
// @Tags About
// @Produce json
// @Param id path int true "区块ID"
// @Success 200 {object} response.Response
// @Router /about-sections/{id} [delete]
func (h *AboutHandler) DeleteSection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.RepoGetSection(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("关于页区块不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询关于页区块失败"),
			response.WithError(err),
		))
		return
	}

	if err := h.db.Delete(&content.AboutSection{}, id).Error; err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("删除关于页区块失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}
