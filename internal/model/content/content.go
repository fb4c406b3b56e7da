// Package content 站点内容相关模型（关于页、联系方式、通用页面内容块）
package content

import (
	"time"
)

// 联系方式平台枚举
var Platforms = []string{
	"email", "facebook", "instagram", "tiktok", "linkedin",
	"pinterest", "youtube", "twitter", "website", "other",
}

// ValidPlatform 校验平台枚举
func ValidPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// AboutSection 关于页段落区块
type AboutSection struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	// 有序段落文本
	Paragraphs  []string  `gorm:"type:jsonb;serializer:json" json:"paragraphs"`
	Image       string    `gorm:"type:varchar(500)" json:"image"`
	ImageAlt    string    `gorm:"type:varchar(255)" json:"image_alt"`
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactLink 联系方式/社交链接
// (platform, url) 唯一
type ContactLink struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Platform string `gorm:"type:varchar(50);not null;uniqueIndex:idx_contact_platform_url" json:"platform"`
	URL      string `gorm:"type:varchar(500);not null;uniqueIndex:idx_contact_platform_url" json:"url"`
	Label    string `gorm:"type:varchar(255)" json:"label"`
	SortOrder int  `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageContent 通用页面内容块，按 (page, section) 唯一定位
// 用于首页hero、简介等命名内容区
type PageContent struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Page    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_page_section" json:"page"`
	Section string `gorm:"type:varchar(100);not null;uniqueIndex:idx_page_section" json:"section"`
	Title   string `gorm:"type:varchar(255)" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Image   string `gorm:"type:varchar(500)" json:"image"`
	ImageAlt string `gorm:"type:varchar(255)" json:"image_alt"`
	// 自由键值对元数据
	Metadata map[string]string `gorm:"type:jsonb;serializer:json" json:"metadata"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PageContent) TableName() string {
	return "page_contents"
}
