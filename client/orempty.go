package client

import (
	"log"

	"fiberloom/backend/internal/model/blog"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
)

// OrEmpty变体：请求失败记日志并退化为空值，页面渲染路径不向上抛错

// FetchProductsOrEmpty 失败时返回空切片
func (c *Client) FetchProductsOrEmpty(page, limit int) []product.Product {
	products, err := c.FetchProducts(page, limit)
	if err != nil {
		log.Printf("[client] 获取商品列表失败: %v", err)
		return []product.Product{}
	}
	return products
}

// FetchProductsByCategoryOrEmpty 失败时返回空切片
func (c *Client) FetchProductsByCategoryOrEmpty(category string) []product.Product {
	products, err := c.FetchProductsByCategory(category)
	if err != nil {
		log.Printf("[client] 获取分类商品失败: %v", err)
		return []product.Product{}
	}
	return products
}

// FetchHomeGridOrEmpty 失败时返回空切片
func (c *Client) FetchHomeGridOrEmpty() []product.ProductImage {
	images, err := c.FetchHomeGrid()
	if err != nil {
		log.Printf("[client] 获取首页图墙失败: %v", err)
		return []product.ProductImage{}
	}
	return images
}

// FetchArticlesOrEmpty 失败时返回空切片
func (c *Client) FetchArticlesOrEmpty() []blog.Article {
	articles, err := c.FetchArticles()
	if err != nil {
		log.Printf("[client] 获取文章列表失败: %v", err)
		return []blog.Article{}
	}
	return articles
}

// FetchAboutSectionsOrEmpty 失败时返回空切片
func (c *Client) FetchAboutSectionsOrEmpty() []content.AboutSection {
	sections, err := c.FetchAboutSections()
	if err != nil {
		log.Printf("[client] 获取关于页区块失败: %v", err)
		return []content.AboutSection{}
	}
	return sections
}

// FetchSocialLinksOrEmpty 失败时返回空切片；成功时经URL安全过滤
func (c *Client) FetchSocialLinksOrEmpty() []SocialLink {
	links, err := c.FetchContactLinks()
	if err != nil {
		log.Printf("[client] 获取联系方式失败: %v", err)
		return []SocialLink{}
	}
	return AdaptContactLinks(links)
}

// FetchContentBlockOrFallback 失败或缺行时返回硬编码默认内容块
func (c *Client) FetchContentBlockOrFallback(page, section string) ContentBlock {
	row, err := c.FetchPageContent(page, section)
	if err != nil {
		log.Printf("[client] 获取页面内容 %s/%s 失败，使用默认内容: %v", page, section, err)
		return FallbackContentBlock(page, section)
	}
	return AdaptPageContent(row)
}
