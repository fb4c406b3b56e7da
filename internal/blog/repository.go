package blog

import (
	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/blog"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// GetByID 获取文章详情，携带标签与图片
func (r *ArticleRepository) GetByID(id uint) (*blog.Article, error) {
	var a blog.Article
	err := r.db.Preload("Tags").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_cover desc, sort_order asc, created_at desc")
		}).
		First(&a, id).Error
	return &a, err
}

// GetBySlug 按slug获取文章
func (r *ArticleRepository) GetBySlug(slug string) (*blog.Article, error) {
	var a blog.Article
	err := r.db.Preload("Tags").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_cover desc, sort_order asc, created_at desc")
		}).
		Where("slug = ?", slug).First(&a).Error
	return &a, err
}

// List 文章列表，支持仅已发布过滤与分页
func (r *ArticleRepository) List(q dto.ListArticlesQuery) ([]blog.Article, int64, error) {
	query := r.db.Model(&blog.Article{})
	if q.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []blog.Article
	err := query.Preload("Tags").Preload("Images").
		Order("sort_order asc, created_at desc").
		Offset((q.Page - 1) * q.Limit).Limit(q.Limit).
		Find(&articles).Error
	return articles, total, err
}

// SlugExists 检查slug是否已被其他文章占用
func (r *ArticleRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&blog.Article{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CreateWithTags 事务内创建文章并建立标签关联（标签按名称find-or-create）
func (r *ArticleRepository) CreateWithTags(a *blog.Article, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(a).Error; err != nil {
			return err
		}
		return replaceTags(tx, a, tagNames)
	})
}

// UpdateWithTags 事务内更新文章；tagNames为nil时不动标签关联
func (r *ArticleRepository) UpdateWithTags(a *blog.Article, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Images").Save(a).Error; err != nil {
			return err
		}
		if tagNames == nil {
			return nil
		}
		if err := tx.Where("article_id = ?", a.ID).Delete(&blog.ArticleTag{}).Error; err != nil {
			return err
		}
		return replaceTags(tx, a, tagNames)
	})
}

// replaceTags 按名称find-or-create标签并写入关联表
func replaceTags(tx *gorm.DB, a *blog.Article, tagNames []string) error {
	a.Tags = a.Tags[:0]
	for _, name := range tagNames {
		if name == "" {
			continue
		}
		var tag blog.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if err == gorm.ErrRecordNotFound {
			tag = blog.Tag{Name: name, Slug: Slugify(name)}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		join := blog.ArticleTag{ArticleID: a.ID, TagID: tag.ID}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
		a.Tags = append(a.Tags, tag)
	}
	return nil
}

// Delete 事务内删除文章及其标签关联与图片记录
func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&blog.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&blog.ArticleImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&blog.Article{}, id).Error
	})
}

// ---- 标签 ----

// ListTags 标签列表，按名称排序
func (r *ArticleRepository) ListTags() ([]blog.Tag, error) {
	var tags []blog.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}

// GetTagByID 获取标签
func (r *ArticleRepository) GetTagByID(id uint) (*blog.Tag, error) {
	var tag blog.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

// TagExists 检查标签名称或slug是否已被其他标签占用
func (r *ArticleRepository) TagExists(name, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&blog.Tag{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CreateTag 创建标签
func (r *ArticleRepository) CreateTag(tag *blog.Tag) error {
	return r.db.Create(tag).Error
}

// UpdateTag 更新标签
func (r *ArticleRepository) UpdateTag(tag *blog.Tag) error {
	return r.db.Save(tag).Error
}

// DeleteTag 事务内删除标签并清理关联
func (r *ArticleRepository) DeleteTag(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&blog.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&blog.Tag{}, id).Error
	})
}

// ---- 文章图片 ----

// GetImageByID 获取文章图片
func (r *ArticleRepository) GetImageByID(id uint) (*blog.ArticleImage, error) {
	var img blog.ArticleImage
	err := r.db.First(&img, id).Error
	return &img, err
}

// CreateImage 创建文章图片记录
func (r *ArticleRepository) CreateImage(img *blog.ArticleImage) error {
	return r.db.Create(img).Error
}

// UpdateImage 更新文章图片记录
func (r *ArticleRepository) UpdateImage(img *blog.ArticleImage) error {
	return r.db.Save(img).Error
}

// DeleteImage 删除文章图片记录
func (r *ArticleRepository) DeleteImage(id uint) error {
	return r.db.Delete(&blog.ArticleImage{}, id).Error
}

// ClearCover 清除文章下所有图片的封面标记
// 单封面约束：设置新封面前调用
func (r *ArticleRepository) ClearCover(articleID uint) error {
	return r.db.Model(&blog.ArticleImage{}).
		Where("article_id = ?", articleID).
		Update("is_cover", false).Error
}
