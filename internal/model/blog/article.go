// Package blog 博客相关模型
package blog

import (
	"time"
)

// Article 博客文章表
type Article struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle string `gorm:"type:varchar(255)" json:"subtitle"`
	// 富文本内容
	Content string `gorm:"type:text" json:"content"`
	// URL slug，唯一；创建时未提供则由标题派生
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	IsPublished bool       `gorm:"default:false;index" json:"is_published"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	// 标签多对多，显式关联表
	Tags []Tag `gorm:"many2many:blog_article_tags" json:"tags,omitempty"`
	// 文章图片，最多一张封面
	Images    []ArticleImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Article) TableName() string {
	return "blog_articles"
}

// ArticleImage 文章图片表
type ArticleImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	URL       string `gorm:"type:varchar(500);not null" json:"url"`
	IsCover   bool   `gorm:"default:false" json:"is_cover"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	ArticleID uint   `gorm:"not null;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArticleImage) TableName() string {
	return "blog_article_images"
}
