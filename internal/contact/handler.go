package contact

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/response"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
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

// ListLinks 获取联系方式列表
// @Summary 获取联系方式列表（按sort_order排序，可选仅启用）
// @Tags Contact
// @Produce json
// @Param active_only query bool false "仅启用"
// @Success 200 {object} response.Response
// @Router /contact-links [get]
func (h *ContactHandler) ListLinks(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	links, err := h.RepoListLinks(activeOnly)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询联系方式失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, links)
}

// GetLink 获取联系方式
// @Summary 获取联系方式详情
// @Tags Contact
// @Produce json
// @Param id path int true "联系方式ID"
// @Success 200 {object} response.Response
// @Router /contact-links/{id} [get]
func (h *ContactHandler) GetLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	link, err := h.RepoGetLink(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("联系方式不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询联系方式失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, link)
}

// CreateLink 创建联系方式
// @Summary 创建联系方式（(platform,url)唯一）
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactLinkRequest true "创建请求"
// @Success 201 {object} response.Response
// @Router /contact-links [post]
func (h *ContactHandler) CreateLink(c *gin.Context) {
	var req dto.CreateContactLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	exists, err := h.RepoLinkExists(req.Platform, req.URL, 0)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("检查联系方式失败"),
			response.WithError(err),
		))
		return
	}
	if exists {
		dto.ErrorResponse(c, response.ConflictError("该平台下已存在相同链接"))
		return
	}

	link := &content.ContactLink{
		Platform:  req.Platform,
		URL:       req.URL,
		Label:     req.Label,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := h.db.Create(link).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("创建联系方式失败"))
		return
	}
	dto.CreatedResponse(c, link)
}

// UpdateLink 更新联系方式
// @Summary 更新联系方式
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "联系方式ID"
// @Param request body dto.UpdateContactLinkRequest true "更新请求"
// @Success 200 {object} response.Response
// @Router /contact-links/{id} [patch]
func (h *ContactHandler) UpdateLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateContactLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	link, err := h.RepoGetLink(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("联系方式不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询联系方式失败"),
			response.WithError(err),
		))
		return
	}

	if req.Platform != nil {
		link.Platform = *req.Platform
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Label != nil {
		link.Label = *req.Label
	}
	if req.SortOrder != nil {
		link.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if req.Platform != nil || req.URL != nil {
		exists, err := h.RepoLinkExists(link.Platform, link.URL, id)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorMessage("检查联系方式失败"),
				response.WithError(err),
			))
			return
		}
		if exists {
			dto.ErrorResponse(c, response.ConflictError("该平台下已存在相同链接"))
			return
		}
	}

	if err := h.db.Save(link).Error; err != nil {
		dto.ErrorResponse(c, response.BadRequestError("更新联系方式失败"))
		return
	}
	dto.SuccessResponse(c, link)
}

// DeleteLink 删除联系方式
// @Summary 删除联系方式
// @Tags Contact
// @Produce json
// @Param id path int true "联系方式ID"
// @Success 200 {object} response.Response
// @Router /contact-links/{id} [delete]
func (h *ContactHandler) DeleteLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.RepoGetLink(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto.ErrorResponse(c, response.NotFoundError("联系方式不存在"))
			return
		}
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("查询联系方式失败"),
			response.WithError(err),
		))
		return
	}

	if err := h.db.Delete(&content.ContactLink{}, id).Error; err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorMessage("删除联系方式失败"),
			response.WithError(err),
		))
		return
	}
	dto.SuccessResponse(c, gin.H{"deleted": id})
}
