package pagecontent

import (
	"fiberloom/backend/internal/model/content"
)

func (h *PageContentHandler) RepoListContent(page string) ([]content.PageContent, error) {
	query := h.db.Model(&content.PageContent{})
	if page != "" {
		query = query.Where("page = ?", page)
	}

	var rows []content.PageContent
	err := query.Order("page asc, sort_order asc").Find(&rows).Error
	return rows, err
}

func (h *PageContentHandler) RepoGetByID(id uint) (*content.PageContent, error) {
	var row content.PageContent
	err := h.db.First(&row, id).Error
	return &row, err
}

func (h *PageContentHandler) RepoGetBySection(page, section string) (*content.PageContent, error) {
	var row content.PageContent
	err := h.db.Where("page = ? AND section = ?", page, section).First(&row).Error
	return &row, err
}

func (h *PageContentHandler) RepoSectionExists(page, section string, excludeID uint) (bool, error) {
	var count int64
	query := h.db.Model(&content.PageContent{}).
		Where("page = ? AND section = ?", page, section)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
