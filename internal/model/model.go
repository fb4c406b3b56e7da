package model

import (
	"gorm.io/gorm"

	"fiberloom/backend/internal/model/blog"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 商品相关模型
		&product.Product{},
		&product.ProductImage{},
		// 博客相关模型
		&blog.Article{},
		&blog.Tag{},
		&blog.ArticleTag{},
		&blog.ArticleImage{},
		// 站点内容模型
		&content.AboutSection{},
		&content.ContactLink{},
		&content.PageContent{},
	)
	if err != nil {
		return err
	}
	return nil
}
