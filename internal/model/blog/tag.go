package blog

import "time"

// Tag 标签表
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug string `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "blog_tags"
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	TagID     uint      `gorm:"primaryKey" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArticleTag) TableName() string {
	return "blog_article_tags"
}
