package blog

import (
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/model/blog"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/upload"
)

type BlogService struct {
	repo    *ArticleRepository
	uploads *upload.Service
}

func NewBlogService(repo *ArticleRepository, uploads *upload.Service) *BlogService {
	return &BlogService{repo: repo, uploads: uploads}
}

// CreateArticle 创建文章
// slug未提供时由标题派生；slug冲突返回Conflict
func (s *BlogService) CreateArticle(req dto.CreateArticleRequest) (*blog.Article, *response.BusinessError) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, response.BadRequestError("无法从标题派生slug")
	}

	exists, err := s.repo.SlugExists(slug, 0)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("检查slug失败"), response.WithError(err))
	}
	if exists {
		return nil, response.ConflictError("文章slug已存在")
	}

	a := &blog.Article{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		Slug:        slug,
		IsPublished: req.IsPublished,
		SortOrder:   req.SortOrder,
	}
	if req.IsPublished {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := s.repo.CreateWithTags(a, req.Tags); err != nil {
		return nil, response.BadRequestError("创建文章失败")
	}
	return a, nil
}

// GetArticle 获取文章详情
func (s *BlogService) GetArticle(id uint) (*blog.Article, *response.BusinessError) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询文章失败"), response.WithError(err))
	}
	return a, nil
}

// GetArticleBySlug 按slug获取文章
func (s *BlogService) GetArticleBySlug(slug string) (*blog.Article, *response.BusinessError) {
	a, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询文章失败"), response.WithError(err))
	}
	return a, nil
}

// ListArticles 文章列表
func (s *BlogService) ListArticles(q dto.ListArticlesQuery) (*dto.ArticleListResponse, *response.BusinessError) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	articles, total, err := s.repo.List(q)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("查询文章列表失败"), response.WithError(err))
	}

	return &dto.ArticleListResponse{
		Data:       articles,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}, nil
}

// UpdateArticle 更新文章
// 发布状态翻转时同步维护PublishedAt
func (s *BlogService) UpdateArticle(id uint, req dto.UpdateArticleRequest) (*blog.Article, *response.BusinessError) {
	a, berr := s.GetArticle(id)
	if berr != nil {
		return nil, berr
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Subtitle != nil {
		a.Subtitle = *req.Subtitle
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Slug != nil && *req.Slug != a.Slug {
		exists, err := s.repo.SlugExists(*req.Slug, id)
		if err != nil {
			return nil, response.NewBusinessError(response.WithErrorMessage("检查slug失败"), response.WithError(err))
		}
		if exists {
			return nil, response.ConflictError("文章slug已存在")
		}
		a.Slug = *req.Slug
	}
	if req.SortOrder != nil {
		a.SortOrder = *req.SortOrder
	}
	if req.IsPublished != nil && *req.IsPublished != a.IsPublished {
		a.IsPublished = *req.IsPublished
		if a.IsPublished {
			now := time.Now()
			a.PublishedAt = &now
		} else {
			a.PublishedAt = nil
		}
	}

	var tagNames []string
	if req.Tags != nil {
		tagNames = *req.Tags
		if tagNames == nil {
			tagNames = []string{}
		}
	}

	if err := s.repo.UpdateWithTags(a, tagNames); err != nil {
		return nil, response.BadRequestError("更新文章失败")
	}
	return a, nil
}

// DeleteArticle 删除文章及其图片文件
func (s *BlogService) DeleteArticle(id uint) *response.BusinessError {
	a, berr := s.GetArticle(id)
	if berr != nil {
		return berr
	}

	for _, img := range a.Images {
		s.uploads.DeleteByURL(img.URL)
	}

	if err := s.repo.Delete(id); err != nil {
		return response.NewBusinessError(response.WithErrorMessage("删除文章失败"), response.WithError(err))
	}
	return nil
}

// ---- 标签 ----

// ListTags 标签列表
func (s *BlogService) ListTags() ([]blog.Tag, *response.BusinessError) {
	tags, err := s.repo.ListTags()
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("查询标签列表失败"), response.WithError(err))
	}
	return tags, nil
}

// CreateTag 创建标签，名称/slug冲突返回Conflict
func (s *BlogService) CreateTag(req dto.CreateTagRequest) (*blog.Tag, *response.BusinessError) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	exists, err := s.repo.TagExists(req.Name, slug, 0)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("检查标签失败"), response.WithError(err))
	}
	if exists {
		return nil, response.ConflictError("标签名称或slug已存在")
	}

	tag := &blog.Tag{Name: req.Name, Slug: slug}
	if err := s.repo.CreateTag(tag); err != nil {
		return nil, response.BadRequestError("创建标签失败")
	}
	return tag, nil
}

// UpdateTag 更新标签
func (s *BlogService) UpdateTag(id uint, req dto.UpdateTagRequest) (*blog.Tag, *response.BusinessError) {
	tag, err := s.repo.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("标签不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询标签失败"), response.WithError(err))
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Slug != nil {
		tag.Slug = *req.Slug
	}

	exists, err := s.repo.TagExists(tag.Name, tag.Slug, id)
	if err != nil {
		return nil, response.NewBusinessError(response.WithErrorMessage("检查标签失败"), response.WithError(err))
	}
	if exists {
		return nil, response.ConflictError("标签名称或slug已存在")
	}

	if err := s.repo.UpdateTag(tag); err != nil {
		return nil, response.BadRequestError("更新标签失败")
	}
	return tag, nil
}

// DeleteTag 删除标签并清理文章关联
func (s *BlogService) DeleteTag(id uint) *response.BusinessError {
	if _, err := s.repo.GetTagByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("标签不存在")
		}
		return response.NewBusinessError(response.WithErrorMessage("查询标签失败"), response.WithError(err))
	}

	if err := s.repo.DeleteTag(id); err != nil {
		return response.NewBusinessError(response.WithErrorMessage("删除标签失败"), response.WithError(err))
	}
	return nil
}

// ---- 文章图片 ----

// AddImage 上传并挂载文章图片；isCover为真时清除其它封面标记
func (s *BlogService) AddImage(articleID uint, fileHeader *multipart.FileHeader, isCover bool, sortOrder int) (*blog.ArticleImage, *response.BusinessError) {
	if _, berr := s.GetArticle(articleID); berr != nil {
		return nil, berr
	}

	filename, url, err := s.uploads.SaveImage(fileHeader)
	if err != nil {
		return nil, response.BadRequestError(err.Error())
	}

	if isCover {
		if err := s.repo.ClearCover(articleID); err != nil {
			s.uploads.DeleteFile(filename)
			return nil, response.NewBusinessError(response.WithErrorMessage("更新封面标记失败"), response.WithError(err))
		}
	}

	img := &blog.ArticleImage{
		URL:       url,
		IsCover:   isCover,
		SortOrder: sortOrder,
		ArticleID: articleID,
	}
	if err := s.repo.CreateImage(img); err != nil {
		s.uploads.DeleteFile(filename)
		return nil, response.BadRequestError("保存文章图片失败")
	}
	return img, nil
}

// UpdateImage 更新文章图片属性，维护单封面约束
func (s *BlogService) UpdateImage(id uint, req dto.UpdateArticleImageRequest) (*blog.ArticleImage, *response.BusinessError) {
	img, err := s.repo.GetImageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章图片不存在")
		}
		return nil, response.NewBusinessError(response.WithErrorMessage("查询文章图片失败"), response.WithError(err))
	}

	if req.IsCover != nil {
		if *req.IsCover && !img.IsCover {
			if err := s.repo.ClearCover(img.ArticleID); err != nil {
				return nil, response.NewBusinessError(response.WithErrorMessage("更新封面标记失败"), response.WithError(err))
			}
		}
		img.IsCover = *req.IsCover
	}
	if req.SortOrder != nil {
		img.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateImage(img); err != nil {
		return nil, response.BadRequestError("更新文章图片失败")
	}
	return img, nil
}

// DeleteImage 删除文章图片记录及文件
func (s *BlogService) DeleteImage(id uint) *response.BusinessError {
	img, err := s.repo.GetImageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("文章图片不存在")
		}
		return response.NewBusinessError(response.WithErrorMessage("查询文章图片失败"), response.WithError(err))
	}

	if err := s.repo.DeleteImage(id); err != nil {
		return response.NewBusinessError(response.WithErrorMessage("删除文章图片失败"), response.WithError(err))
	}
	s.uploads.DeleteByURL(img.URL)
	return nil
}
