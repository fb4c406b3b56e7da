// Package client 站点前台使用的API客户端与展示层适配器
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"fiberloom/backend/internal/model/blog"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/response"
)

const defaultBaseURL = "http://localhost:8080/api"

// Client API客户端，固定10秒超时
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建客户端
// 基址解析优先级：显式参数 > PUBLIC_API_URL > INTERNAL_API_URL > 本地默认
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PUBLIC_API_URL")
	}
	if baseURL == "" {
		baseURL = os.Getenv("INTERNAL_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope 服务端统一响应体
type envelope struct {
	Code    response.ResponseCode `json:"code"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
}

// get 请求并解包数据段
func (c *Client) get(path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("解析 %s 响应失败: %w", path, err)
	}
	if env.Code != response.Success {
		return fmt.Errorf("%s 返回业务错误 %d: %s", path, env.Code, env.Message)
	}
	if out == nil || env.Data == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// productList 与服务端商品分页响应对应
type productList struct {
	Data []product.Product `json:"data"`
}

// FetchProducts 获取商品列表（单页）
func (c *Client) FetchProducts(page, limit int) ([]product.Product, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var list productList
	if err := c.get("/products", q, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// FetchProductsByCategory 获取分类页商品
func (c *Client) FetchProductsByCategory(category string) ([]product.Product, error) {
	var products []product.Product
	err := c.get("/products/category/"+url.PathEscape(category), nil, &products)
	return products, err
}

// FetchProduct 获取商品详情
func (c *Client) FetchProduct(id uint) (*product.Product, error) {
	var p product.Product
	err := c.get(fmt.Sprintf("/products/%d", id), nil, &p)
	return &p, err
}

// FetchHomeGrid 获取首页图墙
func (c *Client) FetchHomeGrid() ([]product.ProductImage, error) {
	var images []product.ProductImage
	err := c.get("/products/home-grid", nil, &images)
	return images, err
}

// articleList 与服务端文章分页响应对应
type articleList struct {
	Data []blog.Article `json:"data"`
}

// FetchArticles 获取已发布文章列表
func (c *Client) FetchArticles() ([]blog.Article, error) {
	q := url.Values{}
	q.Set("published_only", "true")

	var list articleList
	if err := c.get("/blog-articles", q, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// FetchArticleBySlug 按slug获取文章
func (c *Client) FetchArticleBySlug(slug string) (*blog.Article, error) {
	var a blog.Article
	err := c.get("/blog-articles/slug/"+url.PathEscape(slug), nil, &a)
	return &a, err
}

// FetchAboutSections 获取已发布关于页区块
func (c *Client) FetchAboutSections() ([]content.AboutSection, error) {
	q := url.Values{}
	q.Set("published_only", "true")

	var sections []content.AboutSection
	err := c.get("/about-sections", q, &sections)
	return sections, err
}

// FetchContactLinks 获取启用的联系方式
func (c *Client) FetchContactLinks() ([]content.ContactLink, error) {
	q := url.Values{}
	q.Set("active_only", "true")

	var links []content.ContactLink
	err := c.get("/contact-links", q, &links)
	return links, err
}

// FetchPageContent 按(page, section)获取内容块
func (c *Client) FetchPageContent(page, section string) (*content.PageContent, error) {
	var row content.PageContent
	err := c.get("/page-content/"+url.PathEscape(page)+"/"+url.PathEscape(section), nil, &row)
	return &row, err
}
