package about

import (
	"fiberloom/backend/internal/model/content"
)

func (h *AboutHandler) RepoListSections(publishedOnly bool) ([]content.AboutSection, error) {
	query := h.db.Model(&content.AboutSection{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var sections []content.AboutSection
	err := query.Order("sort_order asc, created_at asc").Find(&sections).Error
	return sections, err
}

func (h *AboutHandler) RepoGetSection(id uint) (*content.AboutSection, error) {
	var section content.AboutSection
	err := h.db.First(&section, id).Error
	return &section, err
}
