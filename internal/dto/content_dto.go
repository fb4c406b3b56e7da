package dto

// CreateAboutSectionRequest 创建关于页区块请求
type CreateAboutSectionRequest struct {
	Title       string      `json:"title" binding:"required,max=255"`
	Paragraphs  StringSlice `json:"paragraphs"`
	Image       string      `json:"image" binding:"omitempty,max=500"`
	ImageAlt    string      `json:"image_alt" binding:"omitempty,max=255"`
	SortOrder   int         `json:"sort_order"`
	IsPublished *bool       `json:"is_published"`
}

// UpdateAboutSectionRequest 更新关于页区块请求
type UpdateAboutSectionRequest struct {
	Title       *string      `json:"title" binding:"omitempty,max=255"`
	Paragraphs  *StringSlice `json:"paragraphs"`
	Image       *string      `json:"image" binding:"omitempty,max=500"`
	ImageAlt    *string      `json:"image_alt" binding:"omitempty,max=255"`
	SortOrder   *int         `json:"sort_order"`
	IsPublished *bool        `json:"is_published"`
}

// CreateContactLinkRequest 创建联系方式请求
type CreateContactLinkRequest struct {
	Platform  string `json:"platform" binding:"required,oneof=email facebook instagram tiktok linkedin pinterest youtube twitter website other"`
	URL       string `json:"url" binding:"required,max=500"`
	Label     string `json:"label" binding:"omitempty,max=255"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateContactLinkRequest 更新联系方式请求
type UpdateContactLinkRequest struct {
	Platform  *string `json:"platform" binding:"omitempty,oneof=email facebook instagram tiktok linkedin pinterest youtube twitter website other"`
	URL       *string `json:"url" binding:"omitempty,max=500"`
	Label     *string `json:"label" binding:"omitempty,max=255"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// CreatePageContentRequest 创建页面内容块请求
type CreatePageContentRequest struct {
	Page        string            `json:"page" binding:"required,max=100"`
	Section     string            `json:"section" binding:"required,max=100"`
	Title       string            `json:"title" binding:"omitempty,max=255"`
	Content     string            `json:"content"`
	Image       string            `json:"image" binding:"omitempty,max=500"`
	ImageAlt    string            `json:"image_alt" binding:"omitempty,max=255"`
	Metadata    map[string]string `json:"metadata"`
	IsPublished *bool             `json:"is_published"`
	SortOrder   int               `json:"sort_order"`
}

// UpdatePageContentRequest 更新页面内容块请求
type UpdatePageContentRequest struct {
	Page        *string            `json:"page" binding:"omitempty,max=100"`
	Section     *string            `json:"section" binding:"omitempty,max=100"`
	Title       *string            `json:"title" binding:"omitempty,max=255"`
	Content     *string            `json:"content"`
	Image       *string            `json:"image" binding:"omitempty,max=500"`
	ImageAlt    *string            `json:"image_alt" binding:"omitempty,max=255"`
	Metadata    *map[string]string `json:"metadata"`
	IsPublished *bool              `json:"is_published"`
	SortOrder   *int               `json:"sort_order"`
}
