package dto

import (
	"encoding/json"

	"fiberloom/backend/internal/model/blog"
)

// StringSlice 自定义字符串切片类型，支持空字符串解析
type StringSlice []string

// UnmarshalJSON 实现自定义JSON解析，处理空字符串情况
func (s *StringSlice) UnmarshalJSON(data []byte) error {
	// 处理空字符串的情况
	if string(data) == `""` || string(data) == `null` {
		*s = []string{}
		return nil
	}

	// 正常解析数组
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*s = arr
	return nil
}

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Subtitle string `json:"subtitle" binding:"max=255"`
	Content  string `json:"content"`
	// 未提供则由标题派生
	Slug        string      `json:"slug" binding:"omitempty,max=255"`
	IsPublished bool        `json:"is_published"`
	SortOrder   int         `json:"sort_order"`
	Tags        StringSlice `json:"tags"`
}

// UpdateArticleRequest 更新文章请求
type UpdateArticleRequest struct {
	Title       *string      `json:"title" binding:"omitempty,max=255"`
	Subtitle    *string      `json:"subtitle" binding:"omitempty,max=255"`
	Content     *string      `json:"content"`
	Slug        *string      `json:"slug" binding:"omitempty,max=255"`
	IsPublished *bool        `json:"is_published"`
	SortOrder   *int         `json:"sort_order"`
	Tags        *StringSlice `json:"tags"`
}

// ListArticlesQuery 文章列表查询参数
type ListArticlesQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
	// 仅返回已发布文章
	PublishedOnly bool `form:"published_only"`
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"omitempty,max=50"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
	Slug *string `json:"slug" binding:"omitempty,max=50"`
}

// UpdateArticleImageRequest 更新文章图片请求
type UpdateArticleImageRequest struct {
	IsCover   *bool `json:"is_cover"`
	SortOrder *int  `json:"sort_order"`
}

// ArticleListResponse 文章列表响应（分页）
type ArticleListResponse struct {
	Data       []blog.Article `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
