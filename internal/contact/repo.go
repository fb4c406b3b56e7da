package contact

import (
	"fiberloom/backend/internal/model/content"
)

func (h *ContactHandler) RepoListLinks(activeOnly bool) ([]content.ContactLink, error) {
	query := h.db.Model(&content.ContactLink{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var links []content.ContactLink
	err := query.Order("sort_order asc, created_at asc").Find(&links).Error
	return links, err
}

func (h *ContactHandler) RepoGetLink(id uint) (*content.ContactLink, error) {
	var link content.ContactLink
	err := h.db.First(&link, id).Error
	return &link, err
}

func (h *ContactHandler) RepoLinkExists(platform, url string, excludeID uint) (bool, error) {
	var count int64
	query := h.db.Model(&content.ContactLink{}).
		Where("platform = ? AND url = ?", platform, url)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
