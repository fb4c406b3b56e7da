package pagecontent

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/response"
)

type PageContentHandler struct {
	db *gorm.DB
}

func NewPageContentHandler(db *gorm.DB) *PageContentHandler {
	return &PageContentHandler{db: db}
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

// ListContent 获取页面内容块列表
// @Summary 获取页面内容块列表（可按page过滤）
// @Tags PageContent
// @Produce json
// @Param page query string false "页面标识"
// @Success 200 {object} response.Response
// @Router /page-content [get]
func (h *PageContentHandler) ListContent(c *gin.Context) {
	rows, err := h.RepoListContent(c.Query("page"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询页面内容失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, rows)
}

// GetBySection 按(page, section)获取内容块
// @Summary 按(page, section)复合键获取内容块，最多一行
// @Tags PageContent
// @Produce json
// @Param page path string true "页面标识"
// @Param section path string true "区块标识"
// @Success 200 {object} response.Response
// @Router /page-content/{page}/{section} [get]
func (h *PageContentHandler) GetBySection(c *gin.Context) {
	row, err := h.RepoGetBySection(c.Param("page"), c.Param("section"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("页面内容不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询页面内容失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, row)
}

// CreateContent 创建页面内容块
// @Summary 创建页面内容块（(page,section)唯一）
// @Tags PageContent
// @Accept json
// @Produce json
// @Param request body dto.CreatePageContentRequest true "创建请求"
// @Success 201 {object} response.Response
// @Router /page-content [post]
func (h *PageContentHandler) CreateContent(c *gin.Context) {
	var req dto.CreatePageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	exists, err := h.RepoSectionExists(req.Page, req.Section, 0)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("检查页面内容失败"),
			response.WithError(err),
		))
		return
	}
	if exists {
		dto.ErrorResponse(c, response.ConflictError("该页面区块已存在"))
		return
	}

	row := &content.PageContent{
		Page:        req.Page,
		Section:     req.Section,
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		ImageAlt:    req.ImageAlt,
		Metadata:    req.Metadata,
		SortOrder:   req.SortOrder,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		row.IsPublished = *req.IsPublished
	}

	if err := h.db.Create(row).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("创建页面内容失败"))
		return
	}
	dto.CreatedResponse(c, row)
}

// UpdateContent 更新页面内容块
// @Summary 更新页面内容块
// @Tags PageContent
// @Accept json
// @Produce json
// @Param id path int true "内容块ID"
// @Param request body dto.UpdatePageContentRequest true "更新请求"
// @Success 200 {object} response.Response
// @Router /page-content/{id} [patch]
func (h *PageContentHandler) UpdateContent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	row, err := h.RepoGetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("页面内容不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询页面内容失败"),
			response.WithError(err),
		))
		return
	}

	if req.Page != nil {
		row.Page = *req.Page
	}
	if req.Section != nil {
		row.Section = *req.Section
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Content != nil {
		row.Content = *req.Content
	}
	if req.Image != nil {
		row.Image = *req.Image
	}
	if req.ImageAlt != nil {
		row.ImageAlt = *req.ImageAlt
	}
	if req.Metadata != nil {
		row.Metadata = *req.Metadata
	}
	if req.SortOrder != nil {
		row.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil {
		row.IsPublished = *req.IsPublished
	}

	if req.Page != nil || req.Section != nil {
		exists, err := h.RepoSectionExists(row.Page, row.Section, id)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorMessage("检查页面内容失败"),
				response.WithError(err),
			))
			return
		}
		if exists {
			dto.ErrorResponse(c, response.ConflictError("该页面区块已存在"))
			return
		}
	}

	if err := h.db.Save(row).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("更新页面内容失败"))
		return
	}
	dto.SuccessResponse(c, row)
}

// DeleteContent 删除页面内容块
// @Summary 删除页面内容块
// @Tags PageContent
// @Produce json
// @Param id path int true "内容块ID"
// @Success 200 {object} response.Response
// @Router /page-content/{id} [delete]
func (h *PageContentHandler) DeleteContent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.RepoGetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("页面内容不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询页面内容失败"),
			response.WithError(err),
		))
		return
	}

	if err := h.db.Delete(&content.PageContent{}, id).Error; err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("删除页面内容失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}
